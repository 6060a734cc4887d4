package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("invalid simulation config")

const (
	MinGridSize = 4
	MaxGridSize = 200
)

type FoodKind int

const (
	FoodRegular FoodKind = iota
	// FoodBoost is the special food that triggers a power-up.
	FoodBoost
)

func (k FoodKind) String() string {
	switch k {
	case FoodRegular:
		return "regular"
	case FoodBoost:
		return "boost"
	}
	return fmt.Sprintf("food(%d)", int(k))
}

// PowerUp is the temporary effect of eating a special food. Durations are
// measured in simulated time.
type PowerUp struct {
	SpeedMultiplier float64
	DurationMs      float64
	// Invincible lets the head pass through solid walls while active.
	Invincible      bool
	ScoreMultiplier int
}

// Config is fixed for the lifetime of one session.
type Config struct {
	GridSize       int
	TickIntervalMs float64
	Boundary       BoundaryPolicy
	InitialLength  int
	FoodValue      int

	// TimeLimitMs ends the session once that much simulated time has
	// elapsed. Zero disables the limit.
	TimeLimitMs float64
	// Lives is the number of fatal collisions the session survives minus
	// one. Zero and one both mean a single life.
	Lives int

	SpeedRampPerFood float64
	SpeedRampMax     float64
	LevelEvery       int

	SpecialFoodChance float64
	PowerUps          map[FoodKind]PowerUp

	MaxSpawnAttempts int
}

func DefaultConfig() Config {
	return Config{
		GridSize:          22,
		TickIntervalMs:    110,
		Boundary:          BoundaryWrap,
		InitialLength:     6,
		FoodValue:         10,
		LevelEvery:        5,
		SpecialFoodChance: 0.1,
		PowerUps: map[FoodKind]PowerUp{
			FoodBoost: {
				SpeedMultiplier: 2,
				DurationMs:      5000,
				Invincible:      true,
				ScoreMultiplier: 1,
			},
		},
		MaxSpawnAttempts: 5000,
	}
}

func (c Config) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("%w: grid size %d outside [%d, %d]", ErrInvalidConfig, c.GridSize, MinGridSize, MaxGridSize)
	}
	if !(c.TickIntervalMs > 0) || math.IsInf(c.TickIntervalMs, 0) {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickIntervalMs)
	}
	if c.Boundary != BoundaryWrap && c.Boundary != BoundarySolid {
		return fmt.Errorf("%w: unknown boundary policy %d", ErrInvalidConfig, int(c.Boundary))
	}
	if c.InitialLength < 1 || c.InitialLength > c.GridSize/2+1 {
		return fmt.Errorf("%w: initial length %d does not fit grid %d", ErrInvalidConfig, c.InitialLength, c.GridSize)
	}
	if c.FoodValue < 0 {
		return fmt.Errorf("%w: food value %d is negative", ErrInvalidConfig, c.FoodValue)
	}
	if c.TimeLimitMs < 0 || math.IsNaN(c.TimeLimitMs) {
		return fmt.Errorf("%w: time limit %v is negative", ErrInvalidConfig, c.TimeLimitMs)
	}
	if c.Lives < 0 {
		return fmt.Errorf("%w: lives %d is negative", ErrInvalidConfig, c.Lives)
	}
	if c.SpeedRampPerFood < 0 || math.IsNaN(c.SpeedRampPerFood) {
		return fmt.Errorf("%w: speed ramp %v is negative", ErrInvalidConfig, c.SpeedRampPerFood)
	}
	if c.SpeedRampPerFood > 0 && !(c.SpeedRampMax >= 1) {
		return fmt.Errorf("%w: speed ramp max %v must be at least 1", ErrInvalidConfig, c.SpeedRampMax)
	}
	if c.LevelEvery < 0 {
		return fmt.Errorf("%w: level step %d is negative", ErrInvalidConfig, c.LevelEvery)
	}
	if !(c.SpecialFoodChance >= 0 && c.SpecialFoodChance <= 1) {
		return fmt.Errorf("%w: special food chance %v outside [0, 1]", ErrInvalidConfig, c.SpecialFoodChance)
	}
	for kind, p := range c.PowerUps {
		if !(p.SpeedMultiplier > 0) || math.IsInf(p.SpeedMultiplier, 0) {
			return fmt.Errorf("%w: %s power-up speed multiplier %v must be positive", ErrInvalidConfig, kind, p.SpeedMultiplier)
		}
		if p.DurationMs < 0 || math.IsNaN(p.DurationMs) {
			return fmt.Errorf("%w: %s power-up duration %v is negative", ErrInvalidConfig, kind, p.DurationMs)
		}
		if p.ScoreMultiplier < 0 {
			return fmt.Errorf("%w: %s power-up score multiplier %d is negative", ErrInvalidConfig, kind, p.ScoreMultiplier)
		}
	}
	if c.MaxSpawnAttempts < 0 {
		return fmt.Errorf("%w: max spawn attempts %d is negative", ErrInvalidConfig, c.MaxSpawnAttempts)
	}
	return nil
}

func (c Config) Copy() Config {
	cp := c
	if c.PowerUps != nil {
		cp.PowerUps = make(map[FoodKind]PowerUp, len(c.PowerUps))
		for kind, p := range c.PowerUps {
			cp.PowerUps[kind] = p
		}
	}
	return cp
}
