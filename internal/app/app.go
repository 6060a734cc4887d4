package app

import (
	"fmt"
	"log"
	"math/rand"

	"snake/internal/audio"
	"snake/internal/clock"
	"snake/internal/config"
	"snake/internal/domain"
	"snake/internal/storage"
)

// Phase is where the player is in the session flow.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// CuePlayer plays the sound for a game event.
type CuePlayer interface {
	Play(cue audio.Cue)
	SetMuted(muted bool)
	SetVolume(v float64)
}

// App owns one engine and its clock and drives them from the frame loop.
// All methods must be called from the goroutine running the frame loop.
type App struct {
	engine *domain.Engine
	clock  *clock.Clock
	store  storage.Store
	cues   CuePlayer
	best   *BestScoreKeeper

	base  domain.Config
	prefs Preferences
	phase Phase

	lastOutcome *domain.GameOutcome
	newBest     bool

	eventCh chan AppEvent
	inputCh chan InputEvent
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventGameStarted AppEventType = iota
	AppEventPaused
	AppEventResumed
	AppEventMenu
	AppEventLifeLost
	AppEventLevelUp
	AppEventPowerUp
	AppEventGameOver
	AppEventError
)

type GameOverPayload struct {
	Outcome domain.GameOutcome
	Best    int
	NewBest bool
}

type ErrorPayload struct {
	Message string
}

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputStartGame InputEventType = iota
	InputTogglePause
	InputRestart
	InputBackToMenu
	InputSteer
	InputSetPreferences
)

type Options struct {
	Settings config.Settings
	Store    storage.Store
	Cues     CuePlayer

	// Rand seeds food placement; nil uses the time.
	Rand *rand.Rand
}

func NewApp(opts Options) (*App, error) {
	base, err := opts.Settings.SimulationConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	store := opts.Store
	if store == nil {
		store = storage.NewMemoryStore()
	}

	prefs := LoadPreferences(store, PreferencesFromSettings(opts.Settings))

	engine, err := domain.NewEngine(prefs.SessionConfig(base), opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	a := &App{
		engine:  engine,
		clock:   clock.New(engine.TickIntervalMs()),
		store:   store,
		cues:    opts.Cues,
		best:    NewBestScoreKeeper(store),
		base:    base,
		prefs:   prefs,
		phase:   PhaseMenu,
		eventCh: make(chan AppEvent, 100),
		inputCh: make(chan InputEvent, 100),
	}

	engine.Subscribe(a.handleEngineEvent)
	engine.Subscribe(a.best.Listener(a.handleScoreRecorded))
	a.applyAudioPreferences()

	return a, nil
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

// Update handles queued input and then runs the frame at nowMs.
func (a *App) Update(nowMs float64) int {
	for drained := false; !drained; {
		select {
		case input := <-a.inputCh:
			a.handleInput(input)
		default:
			drained = true
		}
	}
	return a.Frame(nowMs)
}

// Frame advances the clock to nowMs and steps the engine once per elapsed
// tick. It returns the number of steps taken.
func (a *App) Frame(nowMs float64) int {
	if a.phase != PhaseRunning {
		return 0
	}

	ticks := a.clock.Advance(nowMs)
	steps := 0
	for i := 0; i < ticks; i++ {
		a.engine.Step()
		steps++
		if a.engine.State() != domain.StateRunning {
			break
		}
	}

	// Speed changes apply from the next tick on.
	a.clock.SetTickIntervalMs(a.engine.TickIntervalMs())
	return steps
}

func (a *App) StartGame() error {
	cfg := a.prefs.SessionConfig(a.base)
	if err := a.engine.Reset(cfg); err != nil {
		log.Printf("Failed to start game: %v", err)
		a.emit(AppEvent{Type: AppEventError, Payload: ErrorPayload{Message: err.Error()}})
		return err
	}

	a.clock.SetTickIntervalMs(a.engine.TickIntervalMs())
	a.clock.Reset()
	a.lastOutcome = nil
	a.newBest = false
	a.phase = PhaseRunning

	log.Printf("Game started: mode=%s difficulty=%s walls=%s grid=%d",
		a.prefs.Mode, a.prefs.Difficulty, cfg.Boundary, cfg.GridSize)
	a.emit(AppEvent{Type: AppEventGameStarted})
	return nil
}

// TogglePause switches between running and paused. The clock restarts from
// a fresh baseline on resume so the pause is not replayed as ticks.
func (a *App) TogglePause() {
	switch a.phase {
	case PhaseRunning:
		a.phase = PhasePaused
		a.emit(AppEvent{Type: AppEventPaused})
	case PhasePaused:
		a.clock.Reset()
		a.phase = PhaseRunning
		a.emit(AppEvent{Type: AppEventResumed})
	}
}

// Restart starts a new session unless the menu is showing.
func (a *App) Restart() error {
	if a.phase == PhaseMenu {
		return nil
	}
	return a.StartGame()
}

func (a *App) BackToMenu() {
	a.phase = PhaseMenu
	a.emit(AppEvent{Type: AppEventMenu})
}

func (a *App) Steer(d domain.Direction) {
	if a.phase != PhaseRunning {
		return
	}
	a.engine.SetPendingDirection(d)
}

// SetPreferences saves p. Game settings take effect on the next start;
// audio settings apply at once.
func (a *App) SetPreferences(p Preferences) {
	a.prefs = p
	a.applyAudioPreferences()
	if err := SavePreferences(a.store, p); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

func (a *App) Preferences() Preferences {
	return a.prefs
}

func (a *App) Phase() Phase {
	return a.phase
}

func (a *App) Snapshot() domain.Snapshot {
	return a.engine.Snapshot()
}

func (a *App) Best() int {
	return a.best.Best()
}

// LastOutcome is the result of the most recent finished session.
func (a *App) LastOutcome() (domain.GameOutcome, bool, bool) {
	if a.lastOutcome == nil {
		return domain.GameOutcome{}, false, false
	}
	return *a.lastOutcome, a.newBest, true
}

// Alpha is how far the clock is into the next tick, for interpolation.
func (a *App) Alpha() float64 {
	if a.phase != PhaseRunning {
		return 0
	}
	return a.clock.Alpha()
}

func (a *App) Flush() error {
	return a.store.Flush()
}

func (a *App) handleInput(input InputEvent) {
	switch input.Type {
	case InputStartGame:
		a.StartGame()

	case InputTogglePause:
		a.TogglePause()

	case InputRestart:
		a.Restart()

	case InputBackToMenu:
		a.BackToMenu()

	case InputSteer:
		if dir, ok := input.Payload.(domain.Direction); ok {
			a.Steer(dir)
		}

	case InputSetPreferences:
		if p, ok := input.Payload.(Preferences); ok {
			a.SetPreferences(p)
		}
	}
}

func (a *App) handleEngineEvent(event domain.Event) {
	switch event.Type {
	case domain.EventAte:
		a.play(audio.CueEat)

	case domain.EventPowerUp:
		a.play(audio.CuePowerUp)
		a.emit(AppEvent{Type: AppEventPowerUp, Payload: event.Payload})

	case domain.EventLevelMilestone:
		a.play(audio.CueLevel)
		a.emit(AppEvent{Type: AppEventLevelUp, Payload: event.Payload})

	case domain.EventLifeLost:
		a.play(audio.CueLifeLost)
		a.emit(AppEvent{Type: AppEventLifeLost, Payload: event.Payload})

	case domain.EventDied:
		a.play(audio.CueDie)
		if outcome, ok := event.Payload.(domain.GameOutcome); ok {
			a.lastOutcome = &outcome
			log.Printf("Game over: score=%d reason=%s ticks=%d", outcome.FinalScore, outcome.Reason, outcome.Ticks)
		}
		a.phase = PhaseOver
	}
}

func (a *App) handleScoreRecorded(score int, newBest bool, err error) {
	if err != nil {
		log.Printf("Failed to record score %d: %v", score, err)
	}
	a.newBest = newBest

	payload := GameOverPayload{Best: a.best.Best(), NewBest: newBest}
	if a.lastOutcome != nil {
		payload.Outcome = *a.lastOutcome
	}
	a.emit(AppEvent{Type: AppEventGameOver, Payload: payload})
}

func (a *App) applyAudioPreferences() {
	if a.cues == nil {
		return
	}
	a.cues.SetMuted(!a.prefs.SoundOn)
	a.cues.SetVolume(a.prefs.Volume)
}

func (a *App) play(cue audio.Cue) {
	if a.cues != nil {
		a.cues.Play(cue)
	}
}

// emit never blocks the frame loop; a full queue drops the event.
func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Printf("Dropping app event %d: queue full", event.Type)
	}
}
