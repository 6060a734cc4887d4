package domain

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func testConfig(size int, policy BoundaryPolicy) Config {
	cfg := DefaultConfig()
	cfg.GridSize = size
	cfg.Boundary = policy
	cfg.TickIntervalMs = 100
	cfg.InitialLength = 3
	cfg.FoodValue = 1
	cfg.LevelEvery = 0
	cfg.SpecialFoodChance = 0
	cfg.PowerUps = nil
	return cfg
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()

	e, err := NewEngine(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := e.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return e
}

// place overrides the session layout. Food is put on the given cell even if
// that breaks the spawn invariant, so callers choose it carefully.
func place(e *Engine, body []Cell, dir Direction, food Cell) {
	e.snake = &Snake{Body: append([]Cell(nil), body...)}
	e.direction = dir
	e.pending = dir
	e.food = Food{Cell: food}
}

func recordEvents(e *Engine) *[]Event {
	var events []Event
	e.Subscribe(func(ev Event) {
		events = append(events, ev)
	})
	return &events
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestResetInitialLayout(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))

	want := []Cell{{5, 5}, {4, 5}, {3, 5}}
	if got := e.Snake(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected snake %v, got %v", want, got)
	}
	if e.Direction() != DirectionRight {
		t.Errorf("Expected direction right, got %v", e.Direction())
	}
	if e.Score() != 0 {
		t.Errorf("Expected score 0, got %d", e.Score())
	}
	if e.State() != StateRunning {
		t.Errorf("Expected running state, got %v", e.State())
	}
	for _, cell := range want {
		if e.Food().Cell == cell {
			t.Errorf("Food spawned on snake cell %v", cell)
		}
	}
}

func TestStepBeforeResetIsTerminal(t *testing.T) {
	e, err := NewEngine(testConfig(10, BoundaryWrap), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if e.State() != StateIdle {
		t.Fatalf("Expected idle state, got %v", e.State())
	}

	res := e.Step()
	if !res.AlreadyTerminal || res.Kind != StepNone {
		t.Errorf("Expected already-terminal no-op, got %+v", res)
	}
}

func TestPendingDirectionCommitsOnStep(t *testing.T) {
	tests := []struct {
		dir      Direction
		wantHead Cell
	}{
		{DirectionUp, Cell{5, 4}},
		{DirectionDown, Cell{5, 6}},
		{DirectionRight, Cell{6, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			e := newTestEngine(t, testConfig(10, BoundaryWrap))
			place(e, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirectionRight, Cell{0, 0})

			e.SetPendingDirection(tt.dir)
			if res := e.Step(); res.Kind != StepMoved {
				t.Fatalf("Expected moved, got %v", res.Kind)
			}

			if e.Direction() != tt.dir {
				t.Errorf("Expected committed direction %v, got %v", tt.dir, e.Direction())
			}
			if head := e.Snake()[0]; head != tt.wantHead {
				t.Errorf("Expected head %v, got %v", tt.wantHead, head)
			}
		})
	}
}

func TestReversalIsIgnored(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	place(e, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirectionRight, Cell{0, 0})

	e.SetPendingDirection(DirectionLeft)
	if e.PendingDirection() != DirectionRight {
		t.Fatalf("Reversal should not change pending direction, got %v", e.PendingDirection())
	}

	res := e.Step()
	if res.Kind != StepMoved {
		t.Fatalf("Expected moved, got %v", res.Kind)
	}
	if e.Direction() != DirectionRight {
		t.Errorf("Expected direction right, got %v", e.Direction())
	}
	if head := e.Snake()[0]; head != (Cell{6, 5}) {
		t.Errorf("Expected head (6,5), got %v", head)
	}
}

func TestInvalidDirectionIsIgnored(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))

	e.SetPendingDirection(DirectionNone)
	e.SetPendingDirection(Direction(42))

	if e.PendingDirection() != DirectionRight {
		t.Errorf("Expected pending right, got %v", e.PendingDirection())
	}
}

func TestLatestValidDirectionWins(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	place(e, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirectionRight, Cell{0, 0})

	e.SetPendingDirection(DirectionUp)
	e.SetPendingDirection(DirectionDown)
	// Opposite of the committed direction, not of the pending one.
	e.SetPendingDirection(DirectionLeft)

	e.Step()
	if e.Direction() != DirectionDown {
		t.Errorf("Expected direction down, got %v", e.Direction())
	}
}

func TestReversalGuardUsesCommittedDirection(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	place(e, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirectionRight, Cell{0, 0})

	// Up then Left between ticks must not let the head turn into the neck.
	e.SetPendingDirection(DirectionUp)
	e.SetPendingDirection(DirectionLeft)

	if res := e.Step(); res.Kind != StepMoved {
		t.Fatalf("Expected moved, got %v", res.Kind)
	}
	if e.Direction() != DirectionUp {
		t.Errorf("Expected direction up, got %v", e.Direction())
	}
}

func TestWrapBoundary(t *testing.T) {
	tests := []struct {
		name string
		body []Cell
		dir  Direction
		want Cell
	}{
		{"right edge", []Cell{{9, 3}, {8, 3}, {7, 3}}, DirectionRight, Cell{0, 3}},
		{"left edge", []Cell{{0, 3}, {1, 3}, {2, 3}}, DirectionLeft, Cell{9, 3}},
		{"top edge", []Cell{{4, 0}, {4, 1}, {4, 2}}, DirectionUp, Cell{4, 9}},
		{"bottom edge", []Cell{{4, 9}, {4, 8}, {4, 7}}, DirectionDown, Cell{4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, testConfig(10, BoundaryWrap))
			place(e, tt.body, tt.dir, Cell{5, 5})

			if res := e.Step(); res.Kind != StepMoved {
				t.Fatalf("Expected moved, got %v", res.Kind)
			}
			if head := e.Snake()[0]; head != tt.want {
				t.Errorf("Expected head %v, got %v", tt.want, head)
			}
		})
	}
}

func TestSolidBoundaryDies(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundarySolid))
	body := []Cell{{9, 5}, {8, 5}, {7, 5}}
	place(e, body, DirectionRight, Cell{0, 0})

	res := e.Step()
	if res.Kind != StepDied {
		t.Fatalf("Expected died, got %v", res.Kind)
	}
	if res.Outcome == nil || res.Outcome.Reason != ReasonWall {
		t.Fatalf("Expected wall outcome, got %+v", res.Outcome)
	}
	if e.State() != StateDead {
		t.Errorf("Expected dead state, got %v", e.State())
	}
	if got := e.Snake(); !reflect.DeepEqual(got, body) {
		t.Errorf("Snake mutated on fatal step: %v", got)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	cfg := testConfig(10, BoundaryWrap)
	cfg.FoodValue = 10
	e := newTestEngine(t, cfg)
	place(e, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirectionRight, Cell{6, 5})

	res := e.Step()
	if res.Kind != StepAte {
		t.Fatalf("Expected ate, got %v", res.Kind)
	}
	if e.Score() != 10 {
		t.Errorf("Expected score 10, got %d", e.Score())
	}

	snake := e.Snake()
	if len(snake) != 4 {
		t.Fatalf("Expected length 4, got %d", len(snake))
	}
	for _, cell := range snake {
		if cell == e.Food().Cell {
			t.Errorf("Food respawned on snake cell %v", cell)
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	place(e, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirectionRight, Cell{6, 5})

	if res := e.Step(); res.Kind != StepAte {
		t.Fatalf("Expected ate, got %v", res.Kind)
	}

	want := []Cell{{6, 5}, {5, 5}, {4, 5}, {3, 5}}
	if got := e.Snake(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected snake %v, got %v", want, got)
	}
	if e.Score() != 1 {
		t.Errorf("Expected score 1, got %d", e.Score())
	}
	for _, cell := range want {
		if e.Food().Cell == cell {
			t.Errorf("Food relocated onto snake cell %v", cell)
		}
	}
}

func TestSelfCollisionDies(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	// Heading left; turning up lands on (5,4), a body segment that is not
	// the tail.
	place(e, []Cell{{5, 5}, {6, 5}, {6, 4}, {5, 4}, {4, 4}}, DirectionLeft, Cell{0, 0})

	e.SetPendingDirection(DirectionUp)
	res := e.Step()
	if res.Kind != StepDied {
		t.Fatalf("Expected died, got %v", res.Kind)
	}
	if res.Outcome.Reason != ReasonSelf {
		t.Errorf("Expected self collision, got %v", res.Outcome.Reason)
	}

	before := e.Snapshot()
	for i := 0; i < 3; i++ {
		if res := e.Step(); !res.AlreadyTerminal {
			t.Fatalf("Expected already-terminal on step %d, got %+v", i, res)
		}
	}
	if after := e.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("Dead engine mutated:\nbefore %+v\nafter  %+v", before, after)
	}

	e.Restart()
	if e.State() != StateRunning {
		t.Errorf("Expected running after restart, got %v", e.State())
	}
}

func TestMovingIntoVacatingTail(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	place(e, []Cell{{5, 5}, {6, 5}, {6, 4}, {5, 4}}, DirectionLeft, Cell{0, 0})

	e.SetPendingDirection(DirectionUp)
	if res := e.Step(); res.Kind != StepMoved {
		t.Fatalf("Expected moved into vacated tail, got %v", res.Kind)
	}

	want := []Cell{{5, 4}, {5, 5}, {6, 5}, {6, 4}}
	if got := e.Snake(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected snake %v, got %v", want, got)
	}
}

func TestGrowingIntoTailIsFatal(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	place(e, []Cell{{5, 5}, {6, 5}, {6, 4}, {5, 4}}, DirectionLeft, Cell{5, 4})

	e.SetPendingDirection(DirectionUp)
	if res := e.Step(); res.Kind != StepDied {
		t.Fatalf("Expected died, got %v", res.Kind)
	}
}

func TestDiedEmittedOnce(t *testing.T) {
	e := newTestEngine(t, testConfig(10, BoundarySolid))
	events := recordEvents(e)
	place(e, []Cell{{9, 5}, {8, 5}, {7, 5}}, DirectionRight, Cell{0, 0})

	for i := 0; i < 5; i++ {
		e.Step()
	}

	if n := countEvents(*events, EventDied); n != 1 {
		t.Fatalf("Expected 1 died event, got %d", n)
	}
	outcome, ok := (*events)[len(*events)-1].Payload.(GameOutcome)
	if !ok {
		t.Fatalf("Expected GameOutcome payload")
	}
	if got, _ := e.Outcome(); got != outcome {
		t.Errorf("Outcome mismatch: %+v vs %+v", got, outcome)
	}
}

func TestEatEmitsEvents(t *testing.T) {
	cfg := testConfig(10, BoundaryWrap)
	cfg.LevelEvery = 2
	e := newTestEngine(t, cfg)
	events := recordEvents(e)

	place(e, []Cell{{5, 5}, {4, 5}, {3, 5}}, DirectionRight, Cell{6, 5})
	e.Step()
	e.food = Food{Cell: Cell{7, 5}}
	e.Step()

	if n := countEvents(*events, EventAte); n != 2 {
		t.Errorf("Expected 2 ate events, got %d", n)
	}
	if n := countEvents(*events, EventLevelMilestone); n != 1 {
		t.Fatalf("Expected 1 level event, got %d", n)
	}
	for _, ev := range *events {
		if ev.Type == EventLevelMilestone {
			if lp := ev.Payload.(LevelPayload); lp.Level != 2 {
				t.Errorf("Expected level 2, got %d", lp.Level)
			}
		}
	}
	if e.Level() != 2 {
		t.Errorf("Expected engine level 2, got %d", e.Level())
	}
}

func TestLivesRespawnSnake(t *testing.T) {
	cfg := testConfig(10, BoundarySolid)
	cfg.Lives = 2
	e := newTestEngine(t, cfg)
	events := recordEvents(e)

	e.score = 7
	place(e, []Cell{{9, 2}, {8, 2}, {7, 2}}, DirectionRight, Cell{0, 0})

	res := e.Step()
	if res.Kind != StepLifeLost {
		t.Fatalf("Expected life lost, got %v", res.Kind)
	}
	if e.Lives() != 1 {
		t.Errorf("Expected 1 life left, got %d", e.Lives())
	}
	if e.Score() != 7 {
		t.Errorf("Score should survive a lost life, got %d", e.Score())
	}
	want := []Cell{{5, 5}, {4, 5}, {3, 5}}
	if got := e.Snake(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected respawned snake %v, got %v", want, got)
	}
	if countEvents(*events, EventLifeLost) != 1 {
		t.Errorf("Expected a life-lost event")
	}

	place(e, []Cell{{9, 2}, {8, 2}, {7, 2}}, DirectionRight, Cell{0, 0})
	res = e.Step()
	if res.Kind != StepDied {
		t.Fatalf("Expected died on last life, got %v", res.Kind)
	}
	if res.Outcome.FinalScore != 7 {
		t.Errorf("Expected final score 7, got %d", res.Outcome.FinalScore)
	}
}

func TestTimeLimitEndsSession(t *testing.T) {
	cfg := testConfig(10, BoundaryWrap)
	cfg.TimeLimitMs = 300
	e := newTestEngine(t, cfg)
	place(e, []Cell{{5, 1}, {4, 1}, {3, 1}}, DirectionRight, Cell{0, 8})

	e.Step()
	if snap := e.Snapshot(); !snap.HasTimeLimit || snap.TimeLeftMs != 200 {
		t.Fatalf("Expected 200ms left, got %+v", snap)
	}
	e.Step()
	e.Step()

	res := e.Step()
	if res.Kind != StepDied {
		t.Fatalf("Expected died after time limit, got %v", res.Kind)
	}
	if res.Outcome.Reason != ReasonTimeUp {
		t.Errorf("Expected time-up reason, got %v", res.Outcome.Reason)
	}
	if res.Outcome.Ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", res.Outcome.Ticks)
	}
}

func TestBoostPowerUp(t *testing.T) {
	cfg := testConfig(10, BoundarySolid)
	cfg.PowerUps = map[FoodKind]PowerUp{
		FoodBoost: {SpeedMultiplier: 2, DurationMs: 300, Invincible: true, ScoreMultiplier: 1},
	}
	e := newTestEngine(t, cfg)
	events := recordEvents(e)

	place(e, []Cell{{7, 1}, {6, 1}, {5, 1}}, DirectionRight, Cell{8, 1})
	e.food.Kind = FoodBoost

	if res := e.Step(); res.Kind != StepAte {
		t.Fatalf("Expected ate, got %v", res.Kind)
	}
	if got := e.TickIntervalMs(); got != 50 {
		t.Errorf("Expected boosted interval 50, got %v", got)
	}
	if countEvents(*events, EventPowerUp) != 1 {
		t.Errorf("Expected a power-up event")
	}

	// Invincible: the solid wall wraps instead of killing.
	e.food = Food{Cell: Cell{5, 8}}
	if res := e.Step(); res.Kind != StepMoved {
		t.Fatalf("Expected moved while invincible, got %v", res.Kind)
	}
	if res := e.Step(); res.Kind != StepMoved {
		t.Fatalf("Expected moved through wall, got %v", res.Kind)
	}
	if head := e.Snake()[0]; head != (Cell{0, 1}) {
		t.Errorf("Expected head wrapped to (0,1), got %v", head)
	}

	for i := 0; i < 10 && countEvents(*events, EventPowerUpExpired) == 0; i++ {
		e.Step()
	}
	if countEvents(*events, EventPowerUpExpired) != 1 {
		t.Fatalf("Expected power-up to expire")
	}
	if got := e.TickIntervalMs(); got != 100 {
		t.Errorf("Expected interval back to 100, got %v", got)
	}
}

func TestSpeedRamp(t *testing.T) {
	cfg := testConfig(10, BoundaryWrap)
	cfg.SpeedRampPerFood = 0.5
	cfg.SpeedRampMax = 2
	e := newTestEngine(t, cfg)
	place(e, []Cell{{2, 1}, {1, 1}, {0, 1}}, DirectionRight, Cell{3, 1})

	want := []float64{100 / 1.5, 50, 50}
	for i, w := range want {
		if res := e.Step(); res.Kind != StepAte {
			t.Fatalf("step %d: expected ate, got %v", i, res.Kind)
		}
		if got := e.TickIntervalMs(); math.Abs(got-w) > 1e-9 {
			t.Errorf("step %d: expected interval %v, got %v", i, w, got)
		}
		e.food = Food{Cell: Cell{4 + i, 1}}
	}
}

func TestBoardFullIsWin(t *testing.T) {
	e := newTestEngine(t, testConfig(4, BoundaryWrap))
	body := []Cell{
		{1, 3}, {2, 3}, {3, 3},
		{3, 2}, {2, 2}, {1, 2}, {0, 2},
		{0, 1}, {1, 1}, {2, 1}, {3, 1},
		{3, 0}, {2, 0}, {1, 0}, {0, 0},
	}
	place(e, body, DirectionLeft, Cell{0, 3})

	res := e.Step()
	if res.Kind != StepDied {
		t.Fatalf("Expected terminal step, got %v", res.Kind)
	}
	if !res.Outcome.Won || res.Outcome.Reason != ReasonBoardFull {
		t.Errorf("Expected board-full win, got %+v", res.Outcome)
	}
	if res.Outcome.Length != 16 {
		t.Errorf("Expected length 16, got %d", res.Outcome.Length)
	}
}

func TestPlaceFoodFallbackScan(t *testing.T) {
	field := NewField(4, BoundaryWrap)
	occupied := map[Cell]bool{{0, 0}: true, {1, 0}: true}

	cell, ok := placeFood(rand.New(rand.NewSource(1)), field, occupied, 0)
	if !ok || cell != (Cell{2, 0}) {
		t.Errorf("Expected scan to find (2,0), got %v %v", cell, ok)
	}

	full := make(map[Cell]bool)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			full[Cell{x, y}] = true
		}
	}
	if _, ok := placeFood(rand.New(rand.NewSource(1)), field, full, 100); ok {
		t.Errorf("Expected no cell on a full grid")
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	cfg := testConfig(8, BoundaryWrap)
	cfg.SpecialFoodChance = 0.3
	cfg.PowerUps = DefaultConfig().PowerUps
	cfg.Lives = 2
	e := newTestEngine(t, cfg)
	rng := rand.New(rand.NewSource(99))
	dirs := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

	lastScore := 0
	for i := 0; i < 3000; i++ {
		e.SetPendingDirection(dirs[rng.Intn(len(dirs))])
		res := e.Step()

		if res.Kind == StepDied {
			e.Restart()
			lastScore = 0
			continue
		}

		snake := e.Snake()
		seen := make(map[Cell]bool, len(snake))
		for _, cell := range snake {
			if seen[cell] {
				t.Fatalf("step %d: duplicate segment %v in %v", i, cell, snake)
			}
			if cell.X < 0 || cell.X >= 8 || cell.Y < 0 || cell.Y >= 8 {
				t.Fatalf("step %d: segment %v out of range", i, cell)
			}
			seen[cell] = true
		}
		if seen[e.Food().Cell] {
			t.Fatalf("step %d: food %v on snake", i, e.Food().Cell)
		}
		if e.Score() < lastScore {
			t.Fatalf("step %d: score decreased from %d to %d", i, lastScore, e.Score())
		}
		lastScore = e.Score()
	}
}

func TestConfigValidate(t *testing.T) {
	mutate := func(f func(*Config)) Config {
		cfg := DefaultConfig()
		f(&cfg)
		return cfg
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"zero grid", mutate(func(c *Config) { c.GridSize = 0 }), true},
		{"zero tick", mutate(func(c *Config) { c.TickIntervalMs = 0 }), true},
		{"nan tick", mutate(func(c *Config) { c.TickIntervalMs = math.NaN() }), true},
		{"long snake", mutate(func(c *Config) { c.InitialLength = 13 }), true},
		{"negative lives", mutate(func(c *Config) { c.Lives = -1 }), true},
		{"ramp without max", mutate(func(c *Config) { c.SpeedRampPerFood = 0.1 }), true},
		{"chance above one", mutate(func(c *Config) { c.SpecialFoodChance = 1.5 }), true},
		{"zero power-up speed", mutate(func(c *Config) {
			c.PowerUps = map[FoodKind]PowerUp{FoodBoost: {SpeedMultiplier: 0}}
		}), true},
		{"survival", ModeSurvival.Apply(DefaultConfig()), false},
		{"timed hard", DifficultyHard.Apply(ModeTimed.Apply(DefaultConfig())), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = -3
	if _, err := NewEngine(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}

	e := newTestEngine(t, testConfig(10, BoundaryWrap))
	if err := e.Reset(cfg); err == nil {
		t.Fatalf("Expected Reset to reject invalid config")
	}
}

func TestConfigIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg)

	cfg.PowerUps[FoodBoost] = PowerUp{SpeedMultiplier: 9}
	if got := e.Config().PowerUps[FoodBoost].SpeedMultiplier; got != 2 {
		t.Errorf("Engine config changed through caller map: %v", got)
	}
}
