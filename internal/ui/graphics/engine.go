package graphics

import (
	"fmt"
	"log"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Engine is the ebiten game: it routes input from the current screen to the
// session and session events back to the screens.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	session *app.App
	start   time.Time
}

func NewEngine(session *app.App, width, height int) *Engine {
	types.InitFonts()

	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	return &Engine{
		width:         width,
		height:        height,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		session:       session,
		start:         time.Now(),
	}
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	settings types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenSettings] = settings
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (e *Engine) Update() error {
	if screen := e.screenMap[e.currentScreen]; screen != nil {
		if quit := e.handleEvent(screen.Update()); quit {
			return ebiten.Termination
		}
	}

	e.session.Update(e.nowMs())
	e.drainSessionEvents()
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(GameViewUpdater); ok {
		updater.SetView(e.gameView())
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Best() int {
	return e.session.Best()
}

// Summary describes the session the Play button will start.
func (e *Engine) Summary() string {
	p := e.session.Preferences()
	return fmt.Sprintf("%s  |  %s  |  walls: %s", p.Mode, p.Difficulty, p.Walls)
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			if setter, ok := s.(PreferencesSetter); ok {
				setter.SetPreferences(e.session.Preferences())
			}
			s.OnEnter()
		}
	}
}

func (e *Engine) SetError(err string) {
	if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
		s.SetError(err)
	}
}

func (e *Engine) SetMessage(msg string) {
	if s, ok := e.screenMap[e.currentScreen].(MessageSetter); ok {
		s.SetMessage(msg)
	}
}

func (e *Engine) GetCurrentScreen() types.ScreenType {
	return e.currentScreen
}

func (e *Engine) nowMs() float64 {
	return float64(time.Since(e.start)) / float64(time.Millisecond)
}

func (e *Engine) gameView() types.GameView {
	phase := e.session.Phase()
	_, newBest, _ := e.session.LastOutcome()
	return types.GameView{
		Snapshot: e.session.Snapshot(),
		Paused:   phase == app.PhasePaused,
		Over:     phase == app.PhaseOver,
		Best:     e.session.Best(),
		NewBest:  newBest,
		ShowGrid: e.session.Preferences().ShowGrid,
	}
}

// handleEvent forwards a screen event and reports whether to quit.
func (e *Engine) handleEvent(event types.UIEvent) bool {
	switch event.Type {
	case types.UIEventNone:
		return false

	case types.UIEventQuit:
		return true

	case types.UIEventShowSettings:
		e.SetScreen(types.ScreenSettings)

	case types.UIEventShowMenu:
		if e.currentScreen == types.ScreenGame {
			e.send(app.InputEvent{Type: app.InputBackToMenu})
		} else {
			e.SetScreen(types.ScreenMenu)
		}

	case types.UIEventStartGame:
		e.send(app.InputEvent{Type: app.InputStartGame})

	case types.UIEventTogglePause:
		e.send(app.InputEvent{Type: app.InputTogglePause})

	case types.UIEventRestart:
		e.send(app.InputEvent{Type: app.InputRestart})

	case types.UIEventSteer:
		if data, ok := event.Payload.(types.SteerData); ok {
			e.send(app.InputEvent{Type: app.InputSteer, Payload: data.Direction})
		}

	case types.UIEventSavePreferences:
		if data, ok := event.Payload.(types.PreferencesData); ok {
			e.send(app.InputEvent{Type: app.InputSetPreferences, Payload: data.Preferences})
			e.SetScreen(types.ScreenMenu)
		}
	}
	return false
}

func (e *Engine) send(input app.InputEvent) {
	select {
	case e.session.Input() <- input:
	default:
		log.Println("Input channel full, dropping input")
	}
}

func (e *Engine) drainSessionEvents() {
	for {
		select {
		case event := <-e.session.Events():
			e.handleSessionEvent(event)
		default:
			return
		}
	}
}

func (e *Engine) handleSessionEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventGameStarted:
		e.SetScreen(types.ScreenGame)

	case app.AppEventMenu:
		e.SetScreen(types.ScreenMenu)

	case app.AppEventLevelUp:
		if payload, ok := event.Payload.(domain.LevelPayload); ok {
			e.SetMessage(fmt.Sprintf("Level %d", payload.Level))
		}

	case app.AppEventLifeLost:
		if payload, ok := event.Payload.(domain.LifeLostPayload); ok {
			e.SetMessage(fmt.Sprintf("Ouch! %d lives left", payload.LivesLeft))
		}

	case app.AppEventPowerUp:
		if payload, ok := event.Payload.(domain.PowerUpPayload); ok {
			e.SetMessage(fmt.Sprintf("%s for %ds", payload.Kind, int(payload.DurationMs/1000)))
		}

	case app.AppEventGameOver:
		if payload, ok := event.Payload.(app.GameOverPayload); ok && payload.NewBest {
			e.SetMessage("New best score!")
		}

	case app.AppEventError:
		if payload, ok := event.Payload.(app.ErrorPayload); ok {
			log.Printf("Session error: %s", payload.Message)
			e.SetError(payload.Message)
		}
	}
}

type GameViewUpdater interface {
	SetView(view types.GameView)
}

type PreferencesSetter interface {
	SetPreferences(p app.Preferences)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
