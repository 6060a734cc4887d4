package components

import (
	"image/color"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Enabled       bool
	hovered       bool
	pressed       bool
	touches       []ebiten.TouchID
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Enabled: true,
	}
}

// Update reports a click: a mouse release or a tap ending inside the button.
func (b *Button) Update() bool {
	if !b.Enabled {
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = b.Contains(mx, my)

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if wasPressed && !b.pressed && b.hovered {
		return true
	}

	b.touches = inpututil.AppendJustReleasedTouchIDs(b.touches[:0])
	for _, id := range b.touches {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		if b.Contains(tx, ty) {
			return true
		}
	}
	return false
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	if !b.Enabled {
		bgColor = types.Darken(types.ColorButton, 0.5)
	} else if b.pressed {
		bgColor = types.Darken(types.ColorButtonHover, 0.8)
	} else if b.hovered {
		bgColor = types.ColorButtonHover
	} else {
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorInputBorder, false)

	fonts := types.GetFonts()
	textColor := types.ColorButtonText
	if !b.Enabled {
		textColor = types.ColorTextDim
	}

	bounds := text.BoundString(fonts.Normal, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, b.Text, fonts.Normal, textX, textY, textColor)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
