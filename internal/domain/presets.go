package domain

import "fmt"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

var difficultyTickMs = map[Difficulty]float64{
	DifficultyEasy:   140,
	DifficultyNormal: 110,
	DifficultyHard:   85,
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := difficultyTickMs[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

func (d Difficulty) TickIntervalMs() float64 {
	if ms, ok := difficultyTickMs[d]; ok {
		return ms
	}
	return difficultyTickMs[DifficultyNormal]
}

func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyNormal
	case DifficultyNormal:
		return DifficultyHard
	}
	return DifficultyEasy
}

type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeTimed    Mode = "timed"
	ModeSurvival Mode = "survival"
)

const (
	TimedModeLimitMs    = 60000
	SurvivalLives       = 3
	SurvivalRampPerFood = 0.05
	SurvivalRampMax     = 2.5
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeClassic, ModeTimed, ModeSurvival:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

func (m Mode) Next() Mode {
	switch m {
	case ModeClassic:
		return ModeTimed
	case ModeTimed:
		return ModeSurvival
	}
	return ModeClassic
}

func ParseBoundary(s string) (BoundaryPolicy, error) {
	switch s {
	case "wrap", "off":
		return BoundaryWrap, nil
	case "solid", "on":
		return BoundarySolid, nil
	}
	return BoundaryWrap, fmt.Errorf("unknown wall policy %q", s)
}

// Apply returns cfg with the tick interval of d.
func (d Difficulty) Apply(cfg Config) Config {
	cfg = cfg.Copy()
	cfg.TickIntervalMs = d.TickIntervalMs()
	return cfg
}

// Apply returns cfg with the session variant of m. Classic clears any
// time limit, lives and speed ramp.
func (m Mode) Apply(cfg Config) Config {
	cfg = cfg.Copy()
	cfg.TimeLimitMs = 0
	cfg.Lives = 0
	cfg.SpeedRampPerFood = 0
	cfg.SpeedRampMax = 0

	switch m {
	case ModeTimed:
		cfg.TimeLimitMs = TimedModeLimitMs
	case ModeSurvival:
		cfg.Lives = SurvivalLives
		cfg.SpeedRampPerFood = SurvivalRampPerFood
		cfg.SpeedRampMax = SurvivalRampMax
	}
	return cfg
}
