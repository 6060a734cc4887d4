package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudHeight = 60

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
	ShowGrid bool
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		CellSize: 15,
		OffsetX:  20,
		OffsetY:  20,
		ShowGrid: true,
	}
}

// CalculateLayout fits a size x size board below the HUD, centred.
func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight, size int) {
	if size <= 0 {
		return
	}

	availableWidth := screenWidth - 40
	availableHeight := screenHeight - hudHeight - 40

	fr.CellSize = availableWidth / size
	if cellH := availableHeight / size; cellH < fr.CellSize {
		fr.CellSize = cellH
	}
	if fr.CellSize < 4 {
		fr.CellSize = 4
	}

	board := fr.CellSize * size
	fr.OffsetX = (screenWidth - board) / 2
	fr.OffsetY = hudHeight + (availableHeight-board)/2 + 20
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, size int, boundary domain.BoundaryPolicy) {
	if size <= 0 {
		return
	}

	w := float32(size * fr.CellSize)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, w,
		types.ColorFieldBg, false)

	if fr.ShowGrid {
		for i := 0; i <= size; i++ {
			p := float32(i * fr.CellSize)
			vector.StrokeLine(screen,
				float32(fr.OffsetX)+p, float32(fr.OffsetY),
				float32(fr.OffsetX)+p, float32(fr.OffsetY)+w,
				1, types.ColorGrid, false)
			vector.StrokeLine(screen,
				float32(fr.OffsetX), float32(fr.OffsetY)+p,
				float32(fr.OffsetX)+w, float32(fr.OffsetY)+p,
				1, types.ColorGrid, false)
		}
	}

	// Solid walls get a heavy border.
	if boundary == domain.BoundarySolid {
		vector.StrokeRect(screen,
			float32(fr.OffsetX)-2, float32(fr.OffsetY)-2,
			w+4, w+4,
			3, types.ColorError, false)
	}
}

// DrawFood draws the food; pulse in [0, 1] animates boost food.
func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Food, pulse float64) {
	padding := float32(fr.CellSize) / 4
	if food.Kind == domain.FoodBoost {
		padding = float32(fr.CellSize) / 8 * float32(1+pulse)
	}

	x := float32(fr.OffsetX+food.Cell.X*fr.CellSize) + padding
	y := float32(fr.OffsetY+food.Cell.Y*fr.CellSize) + padding
	size := float32(fr.CellSize) - padding*2

	vector.DrawFilledRect(screen, x, y, size, size, types.FoodColor(food.Kind), false)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, body []domain.Cell, invincible bool) {
	for i := len(body) - 1; i >= 0; i-- {
		cell := body[i]
		x := float32(fr.OffsetX + cell.X*fr.CellSize + 1)
		y := float32(fr.OffsetY + cell.Y*fr.CellSize + 1)
		size := float32(fr.CellSize - 2)

		vector.DrawFilledRect(screen, x, y, size, size, types.SegmentColor(i, len(body)), false)

		if invincible && i == 0 {
			vector.StrokeRect(screen, x-1, y-1, size+2, size+2, 2, types.ColorInvincible, false)
		}
	}
}

// DrawOverlay dims the whole board.
func (fr *FieldRenderer) DrawOverlay(screen *ebiten.Image, size int) {
	w := float32(size * fr.CellSize)
	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, w,
		types.ColorOverlay, false)
}
