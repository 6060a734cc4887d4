package domain

import "math/rand"

func (e *Engine) spawnFood() (Food, bool) {
	cell, ok := placeFood(e.rng, e.field, e.snake.OccupiedCells(), e.cfg.MaxSpawnAttempts)
	if !ok {
		return Food{}, false
	}

	kind := FoodRegular
	if e.cfg.SpecialFoodChance > 0 && e.rng.Float64() < e.cfg.SpecialFoodChance {
		kind = FoodBoost
	}
	return Food{Cell: cell, Kind: kind}, true
}

// placeFood samples uniformly until it hits an empty cell, then falls back to
// a row-major scan after maxAttempts misses. It fails only on a full grid.
func placeFood(rng *rand.Rand, field *Field, occupied map[Cell]bool, maxAttempts int) (Cell, bool) {
	if len(occupied) >= field.CellCount() {
		return Cell{}, false
	}

	for attempts := 0; attempts < maxAttempts; attempts++ {
		pos := Cell{
			X: rng.Intn(field.Size),
			Y: rng.Intn(field.Size),
		}
		if !occupied[pos] {
			return pos, true
		}
	}

	for y := 0; y < field.Size; y++ {
		for x := 0; x < field.Size; x++ {
			pos := Cell{X: x, Y: y}
			if !occupied[pos] {
				return pos, true
			}
		}
	}
	return Cell{}, false
}
