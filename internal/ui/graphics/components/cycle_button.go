package components

import "fmt"

// CycleButton steps through a fixed list of options on every click.
type CycleButton struct {
	*Button
	Label   string
	Options []string
	Index   int
}

func NewCycleButton(width, height int, label string, options []string) *CycleButton {
	c := &CycleButton{
		Button:  NewButton(0, 0, width, height, ""),
		Label:   label,
		Options: options,
	}
	c.refresh()
	return c
}

// Update advances to the next option when clicked and reports the click.
func (c *CycleButton) Update() bool {
	if !c.Button.Update() || len(c.Options) == 0 {
		return false
	}
	c.Index = (c.Index + 1) % len(c.Options)
	c.refresh()
	return true
}

func (c *CycleButton) Value() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.Index]
}

// Select shows value; unknown values leave the selection unchanged.
func (c *CycleButton) Select(value string) {
	for i, opt := range c.Options {
		if opt == value {
			c.Index = i
			break
		}
	}
	c.refresh()
}

func (c *CycleButton) refresh() {
	c.Text = fmt.Sprintf("%s: %s", c.Label, c.Value())
}
