package screens

import (
	"fmt"

	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuContext is what the menu shows besides its buttons.
type MenuContext interface {
	types.ScreenContext
	Best() int
	Summary() string
}

type MenuScreen struct {
	ctx MenuContext

	btnPlay     *components.Button
	btnSettings *components.Button
	btnQuit     *components.Button
}

func NewMenuScreen(ctx MenuContext) *MenuScreen {
	return &MenuScreen{
		ctx:         ctx,
		btnPlay:     components.NewButton(0, 0, 250, 50, "Play"),
		btnSettings: components.NewButton(0, 0, 250, 50, "Settings"),
		btnQuit:     components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnPlay.SetPosition(centerX-125, centerY-80)
	s.btnSettings.SetPosition(centerX-125, centerY-20)
	s.btnQuit.SetPosition(centerX-125, centerY+40)

	if s.btnPlay.Update() || input.IsEnterPressed() || input.IsPausePressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	if s.btnSettings.Update() {
		return types.UIEvent{Type: types.UIEventShowSettings}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			types.DrawCentered(screen, title, fonts.Normal, w/2+dx, 100+dy, types.ColorSnakeHead)
		}
	}
	types.DrawCentered(screen, title, fonts.Normal, w/2, 100, types.ColorTextHighlight)

	types.DrawCentered(screen, s.ctx.Summary(), fonts.Normal, w/2, 130, types.ColorTextDim)
	types.DrawCentered(screen, fmt.Sprintf("Best: %d", s.ctx.Best()), fonts.Normal, w/2, 155, types.ColorText)

	s.btnPlay.Draw(screen)
	s.btnSettings.Draw(screen)
	s.btnQuit.Draw(screen)

	types.DrawCentered(screen, "ENTER to play  |  ESC to quit", fonts.Small, w/2, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
