package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the direction pressed this frame, or DirectionNone.
func (kh *KeyboardHandler) Update() domain.Direction {
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		return domain.DirectionUp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		return domain.DirectionDown
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		return domain.DirectionLeft
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		return domain.DirectionRight
	}

	return domain.DirectionNone
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

func IsPausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func IsRestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func IsFullscreenPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF)
}
