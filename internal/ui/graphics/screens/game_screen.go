package screens

import (
	"fmt"
	"math"

	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const messageFrames = 120

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	hud           *components.HUD
	keyboard      *input.KeyboardHandler
	touch         *input.TouchHandler

	btnResume  *components.Button
	btnRestart *components.Button
	btnMenu    *components.Button

	view      types.GameView
	lastTicks int
	frame     int

	message      string
	messageTimer int
	errorMsg     string
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		hud:           components.NewHUD(0, 0, 400, 50),
		keyboard:      input.NewKeyboardHandler(),
		touch:         input.NewTouchHandler(),
		btnResume:     components.NewButton(0, 0, 160, 40, "Resume"),
		btnRestart:    components.NewButton(0, 0, 160, 40, "Restart"),
		btnMenu:       components.NewButton(0, 0, 160, 40, "Menu"),
	}
}

func (s *GameScreen) SetView(view types.GameView) {
	s.view = view
	if view.Snapshot.Ticks != s.lastTicks {
		s.lastTicks = view.Snapshot.Ticks
		s.touch.Unlock()
	}
}

func (s *GameScreen) Update() types.UIEvent {
	s.frame++
	if s.messageTimer > 0 {
		s.messageTimer--
	}

	w, h := s.ctx.Size()
	s.btnResume.SetPosition(w/2-80, h/2-10)
	s.btnRestart.SetPosition(w/2-80, h/2+40)
	s.btnMenu.SetPosition(w/2-80, h/2+90)

	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}
	if input.IsRestartPressed() {
		return types.UIEvent{Type: types.UIEventRestart}
	}
	if input.IsFullscreenPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch {
	case s.view.Over:
		if s.btnRestart.Update() || input.IsEnterPressed() || input.IsPausePressed() {
			return types.UIEvent{Type: types.UIEventRestart}
		}
		if s.btnMenu.Update() {
			return types.UIEvent{Type: types.UIEventShowMenu}
		}
		return types.UIEvent{Type: types.UIEventNone}

	case s.view.Paused:
		if s.btnResume.Update() || input.IsPausePressed() {
			return types.UIEvent{Type: types.UIEventTogglePause}
		}
		if s.btnRestart.Update() {
			return types.UIEvent{Type: types.UIEventRestart}
		}
		if s.btnMenu.Update() {
			return types.UIEvent{Type: types.UIEventShowMenu}
		}
		return types.UIEvent{Type: types.UIEventNone}
	}

	if input.IsPausePressed() {
		return types.UIEvent{Type: types.UIEventTogglePause}
	}

	dir := s.keyboard.Update()
	if dir == domain.DirectionNone {
		dir = s.touch.Update()
	}
	if dir != domain.DirectionNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	snap := s.view.Snapshot

	s.fieldRenderer.ShowGrid = s.view.ShowGrid
	s.fieldRenderer.CalculateLayout(w, h, snap.GridSize)
	s.fieldRenderer.DrawField(screen, snap.GridSize, snap.Boundary)
	s.fieldRenderer.DrawFood(screen, snap.Food, pulse(s.frame))
	s.fieldRenderer.DrawSnake(screen, snap.Snake, snap.Invincible)

	s.hud.X = 20
	s.hud.Y = 5
	s.hud.Width = w - 40
	s.hud.Draw(screen, snap, s.view.Best)

	switch {
	case s.view.Over:
		s.drawOverlay(screen, w, h, "GAME OVER", s.outcomeText(), s.btnRestart, s.btnMenu)
	case s.view.Paused:
		s.drawOverlay(screen, w, h, "PAUSED", "SPACE to resume  |  R to restart", s.btnResume, s.btnRestart, s.btnMenu)
	}

	s.drawFooter(screen, w, h)
}

func (s *GameScreen) outcomeText() string {
	outcome := s.view.Snapshot.Outcome
	if outcome == nil {
		return ""
	}

	var line string
	switch {
	case outcome.Won:
		line = fmt.Sprintf("Board cleared! Score %d", outcome.FinalScore)
	case outcome.Reason == domain.ReasonTimeUp:
		line = fmt.Sprintf("Time's up! Score %d", outcome.FinalScore)
	case outcome.Reason == domain.ReasonSelf:
		line = fmt.Sprintf("Bit your own tail. Score %d", outcome.FinalScore)
	default:
		line = fmt.Sprintf("Hit a wall. Score %d", outcome.FinalScore)
	}
	if s.view.NewBest {
		line += "  NEW BEST!"
	}
	return line
}

func (s *GameScreen) drawOverlay(screen *ebiten.Image, w, h int, title, subtitle string, buttons ...*components.Button) {
	s.fieldRenderer.DrawOverlay(screen, s.view.Snapshot.GridSize)

	fonts := types.GetFonts()
	types.DrawCentered(screen, title, fonts.Normal, w/2, h/2-60, types.ColorTextHighlight)
	types.DrawCentered(screen, subtitle, fonts.Normal, w/2, h/2-35, types.ColorText)

	y := h/2 - 10
	for _, b := range buttons {
		b.SetPosition(w/2-80, y)
		b.Draw(screen)
		y += 50
	}
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows  |  SPACE pause  |  R restart  |  ESC menu"
	types.DrawCentered(screen, hint, fonts.Small, w/2, h-8, types.ColorTextDim)

	if s.errorMsg != "" {
		types.DrawRight(screen, s.errorMsg, fonts.Normal, w-20, h-24, types.ColorError)
	} else if s.message != "" && s.messageTimer > 0 {
		types.DrawRight(screen, s.message, fonts.Normal, w-20, h-24, types.ColorSuccess)
	}
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
	s.messageTimer = 0
	s.touch.Reset()
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

// SetMessage shows msg for a couple of seconds.
func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
	s.messageTimer = messageFrames
}

func pulse(frame int) float64 {
	return 0.5 + 0.5*math.Sin(float64(frame)/8)
}
