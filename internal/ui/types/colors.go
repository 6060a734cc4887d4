package types

import (
	"image/color"

	"snake/internal/domain"
)

var (
	ColorBackground    = color.RGBA{11, 14, 24, 255}
	ColorFieldBg       = color.RGBA{18, 22, 36, 255}
	ColorGrid          = color.RGBA{32, 38, 58, 255}
	ColorFood          = color.RGBA{255, 80, 120, 255}
	ColorFoodBoost     = color.RGBA{255, 210, 60, 255}
	ColorSnakeHead     = color.RGBA{57, 255, 221, 235}
	ColorSnakeBody     = color.RGBA{168, 85, 247, 200}
	ColorInvincible    = color.RGBA{255, 230, 120, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 170}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorInputBg       = color.RGBA{50, 50, 55, 255}
	ColorInputBorder   = color.RGBA{100, 100, 110, 255}
	ColorInputFocused  = color.RGBA{100, 150, 200, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
)

func FoodColor(kind domain.FoodKind) color.RGBA {
	if kind == domain.FoodBoost {
		return ColorFoodBoost
	}
	return ColorFood
}

// SegmentColor fades the body from just behind the head towards the tail.
func SegmentColor(index, length int) color.RGBA {
	if index == 0 {
		return ColorSnakeHead
	}
	if length <= 1 {
		return ColorSnakeBody
	}
	return Darken(ColorSnakeBody, 1-0.4*float64(index)/float64(length))
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
