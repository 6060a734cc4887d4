package components

import (
	"fmt"
	"strings"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD is the status bar above the board.
type HUD struct {
	X, Y          int
	Width, Height int
}

func NewHUD(x, y, width, height int) *HUD {
	return &HUD{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap domain.Snapshot, best int) {
	vector.DrawFilledRect(screen,
		float32(h.X), float32(h.Y),
		float32(h.Width), float32(h.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(h.X), float32(h.Y),
		float32(h.Width), float32(h.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()
	top := h.Y + 22
	bottom := h.Y + 44

	text.Draw(screen, fmt.Sprintf("SCORE %d", snap.Score), fonts.Normal, h.X+12, top, types.ColorTextHighlight)
	text.Draw(screen, fmt.Sprintf("BEST %d", best), fonts.Normal, h.X+12, bottom, types.ColorTextDim)

	middle := h.X + h.Width/2
	types.DrawCentered(screen, fmt.Sprintf("LEVEL %d  LENGTH %d", snap.Level, len(snap.Snake)), fonts.Normal, middle, top, types.ColorText)

	var status []string
	if snap.Lives > 0 {
		status = append(status, fmt.Sprintf("LIVES %d", snap.Lives))
	}
	if snap.HasTimeLimit {
		status = append(status, fmt.Sprintf("TIME %s", formatSeconds(snap.TimeLeftMs)))
	}
	if snap.PowerUpLeftMs > 0 {
		status = append(status, fmt.Sprintf("%s %s", strings.ToUpper(snap.PowerUp.String()), formatSeconds(snap.PowerUpLeftMs)))
	}

	right := h.X + h.Width - 12
	for i, s := range status {
		y := top
		if i > 0 {
			y = bottom
		}
		if i > 1 {
			// Third item shares the bottom line.
			types.DrawCentered(screen, s, fonts.Small, middle, bottom, types.ColorFoodBoost)
			continue
		}
		types.DrawRight(screen, s, fonts.Normal, right, y, types.ColorText)
	}
}

// formatSeconds rounds up, so a countdown shows 1s until it expires.
func formatSeconds(ms float64) string {
	if ms <= 0 {
		return "0s"
	}
	return fmt.Sprintf("%ds", int((ms+999)/1000))
}
