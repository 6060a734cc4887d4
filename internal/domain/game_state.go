package domain

import (
	"math/rand"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StateDead
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

type Food struct {
	Cell Cell
	Kind FoodKind
}

type activePowerUp struct {
	kind    FoodKind
	rule    PowerUp
	untilMs float64
}

// Engine owns one game session. It is not safe for concurrent use: a single
// caller drives Step and SetPendingDirection.
type Engine struct {
	cfg   Config
	field *Field
	rng   *rand.Rand

	state     State
	snake     *Snake
	direction Direction
	pending   Direction
	food      Food

	score     int
	eaten     int
	ticks     int
	lives     int
	elapsedMs float64
	speedMult float64
	powerUp   *activePowerUp
	outcome   *GameOutcome

	listeners []Listener
}

// NewEngine validates cfg and returns an idle engine. A nil rng is replaced
// by a time-seeded source.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		cfg:       cfg.Copy(),
		field:     NewField(cfg.GridSize, cfg.Boundary),
		rng:       rng,
		state:     StateIdle,
		snake:     NewSnake(Cell{}, 1, DirectionRight),
		direction: DirectionRight,
		pending:   DirectionRight,
		speedMult: 1,
	}, nil
}

// Reset starts a new session with cfg. The only failure is an invalid cfg.
func (e *Engine) Reset(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.cfg = cfg.Copy()
	e.field = NewField(cfg.GridSize, cfg.Boundary)
	e.snake = NewSnake(e.field.Center(), cfg.InitialLength, DirectionRight)
	e.direction = DirectionRight
	e.pending = DirectionRight
	e.score = 0
	e.eaten = 0
	e.ticks = 0
	e.lives = cfg.Lives
	e.elapsedMs = 0
	e.speedMult = 1
	e.powerUp = nil
	e.outcome = nil
	e.state = StateRunning

	if food, ok := e.spawnFood(); ok {
		e.food = food
	}
	return nil
}

// Restart begins a new session with the current config.
func (e *Engine) Restart() {
	// cfg was validated when it was stored
	_ = e.Reset(e.cfg)
}

// Subscribe registers l for every event emitted from now on.
func (e *Engine) Subscribe(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// SetPendingDirection records d for the next Step. Reversals of the
// committed direction and invalid values are ignored.
func (e *Engine) SetPendingDirection(d Direction) {
	if !d.Valid() || d.IsOpposite(e.direction) {
		return
	}
	e.pending = d
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) Direction() Direction {
	return e.direction
}

func (e *Engine) PendingDirection() Direction {
	return e.pending
}

func (e *Engine) Lives() int {
	return e.lives
}

func (e *Engine) Config() Config {
	return e.cfg.Copy()
}

func (e *Engine) Field() Field {
	return *e.field
}

func (e *Engine) Food() Food {
	return e.food
}

func (e *Engine) Snake() []Cell {
	return e.snake.Cells()
}

func (e *Engine) Outcome() (GameOutcome, bool) {
	if e.outcome == nil {
		return GameOutcome{}, false
	}
	return *e.outcome, true
}

// Level starts at 1 and grows every LevelEvery foods.
func (e *Engine) Level() int {
	if e.cfg.LevelEvery <= 0 {
		return 1
	}
	return 1 + e.eaten/e.cfg.LevelEvery
}

// TickIntervalMs is the current effective tick interval after the speed
// ramp and any active power-up.
func (e *Engine) TickIntervalMs() float64 {
	interval := e.cfg.TickIntervalMs / e.speedMult
	if e.powerUp != nil {
		interval /= e.powerUp.rule.SpeedMultiplier
	}
	return interval
}

func (e *Engine) invincible() bool {
	return e.powerUp != nil && e.powerUp.rule.Invincible
}

// Snapshot is a read-only copy of the state a renderer needs.
type Snapshot struct {
	State     State
	Snake     []Cell
	Direction Direction
	Food      Food
	Score     int
	GridSize  int
	Boundary  BoundaryPolicy

	Level          int
	Lives          int
	Ticks          int
	TickIntervalMs float64

	HasTimeLimit bool
	TimeLeftMs   float64

	PowerUp       FoodKind
	PowerUpLeftMs float64
	Invincible    bool

	Outcome *GameOutcome
}

func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:          e.state,
		Snake:          e.snake.Cells(),
		Direction:      e.direction,
		Food:           e.food,
		Score:          e.score,
		GridSize:       e.field.Size,
		Boundary:       e.field.Policy,
		Level:          e.Level(),
		Lives:          e.lives,
		Ticks:          e.ticks,
		TickIntervalMs: e.TickIntervalMs(),
		Invincible:     e.invincible(),
	}

	if e.cfg.TimeLimitMs > 0 {
		snap.HasTimeLimit = true
		snap.TimeLeftMs = e.cfg.TimeLimitMs - e.elapsedMs
		if snap.TimeLeftMs < 0 {
			snap.TimeLeftMs = 0
		}
	}

	if e.powerUp != nil {
		snap.PowerUp = e.powerUp.kind
		snap.PowerUpLeftMs = e.powerUp.untilMs - e.elapsedMs
	}

	if e.outcome != nil {
		outcome := *e.outcome
		snap.Outcome = &outcome
	}

	return snap
}

func (e *Engine) emit(event Event) {
	for _, l := range e.listeners {
		l(event)
	}
}
