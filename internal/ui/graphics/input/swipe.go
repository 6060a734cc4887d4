package input

import "snake/internal/domain"

const (
	DefaultSwipeThreshold = 14
	DefaultSwipeRearm     = 10
)

// SwipeDecoder turns the positions of a single finger into at most one turn
// per tick. A move shorter than Threshold on both axes is ignored; past it,
// the dominant axis picks the direction and the origin follows the finger
// once it has moved more than Rearm.
type SwipeDecoder struct {
	Threshold float64
	Rearm     float64

	active  bool
	locked  bool
	originX float64
	originY float64
}

func NewSwipeDecoder() *SwipeDecoder {
	return &SwipeDecoder{
		Threshold: DefaultSwipeThreshold,
		Rearm:     DefaultSwipeRearm,
	}
}

func (d *SwipeDecoder) Begin(x, y float64) {
	d.active = true
	d.originX = x
	d.originY = y
}

// Move reports the direction of the gesture at (x, y), if it produced one.
func (d *SwipeDecoder) Move(x, y float64) (domain.Direction, bool) {
	if !d.active {
		d.Begin(x, y)
		return domain.DirectionNone, false
	}

	dx := x - d.originX
	dy := y - d.originY
	ax, ay := abs(dx), abs(dy)

	if ax < d.Threshold && ay < d.Threshold {
		return domain.DirectionNone, false
	}

	dir := domain.DirectionNone
	if !d.locked {
		switch {
		case ax >= ay && dx > 0:
			dir = domain.DirectionRight
		case ax >= ay:
			dir = domain.DirectionLeft
		case dy > 0:
			dir = domain.DirectionDown
		default:
			dir = domain.DirectionUp
		}
		d.locked = true
	}

	if ax > d.Rearm || ay > d.Rearm {
		d.originX = x
		d.originY = y
	}
	return dir, dir != domain.DirectionNone
}

func (d *SwipeDecoder) End() {
	d.active = false
}

// Unlock allows the next turn. Call it once per simulation tick.
func (d *SwipeDecoder) Unlock() {
	d.locked = false
}

func (d *SwipeDecoder) Reset() {
	d.active = false
	d.locked = false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
