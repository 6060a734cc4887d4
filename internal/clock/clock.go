// Package clock turns a stream of display-frame timestamps into discrete
// simulation ticks at a fixed interval, independent of the frame rate.
//
// Residual time below one interval is carried forward between frames, so the
// long-run tick rate stays exact even when frames arrive unevenly. A very late
// frame yields several ticks, capped by MaxFrameMs so that a stalled or
// backgrounded window does not trigger an unbounded catch-up burst.
package clock

import (
	"fmt"
	"math"
)

// DefaultMaxFrameMs caps the time credited for a single frame.
const DefaultMaxFrameMs = 250

// Clock is not safe for concurrent use; it belongs to the frame callback.
type Clock struct {
	intervalMs  float64
	maxFrameMs  float64
	accumulator float64
	lastMs      float64
	hasBaseline bool
}

// New panics if tickIntervalMs is not a positive finite number.
func New(tickIntervalMs float64) *Clock {
	mustPositive(tickIntervalMs)
	return &Clock{
		intervalMs: tickIntervalMs,
		maxFrameMs: DefaultMaxFrameMs,
	}
}

// Advance credits the time since the previous call and returns the number of
// whole ticks now due. The first call after New or Reset only records the
// baseline and returns 0.
func (c *Clock) Advance(timestampMs float64) int {
	if !c.hasBaseline {
		if !math.IsNaN(timestampMs) {
			c.lastMs = timestampMs
			c.hasBaseline = true
		}
		return 0
	}

	elapsed := timestampMs - c.lastMs
	if math.IsNaN(elapsed) || elapsed < 0 {
		elapsed = 0
	}
	if elapsed > c.maxFrameMs {
		elapsed = c.maxFrameMs
	}
	if !math.IsNaN(timestampMs) && timestampMs > c.lastMs {
		c.lastMs = timestampMs
	}

	c.accumulator += elapsed
	ticks := int(math.Floor(c.accumulator / c.intervalMs))
	if ticks <= 0 {
		return 0
	}

	c.accumulator -= float64(ticks) * c.intervalMs
	if c.accumulator < 0 {
		c.accumulator = 0
	}
	return ticks
}

// SetTickIntervalMs changes the interval for ticks that have not been
// produced yet. Residual time is kept as-is.
func (c *Clock) SetTickIntervalMs(ms float64) {
	mustPositive(ms)
	c.intervalMs = ms
}

func (c *Clock) TickIntervalMs() float64 {
	return c.intervalMs
}

// SetMaxFrameMs changes the per-frame cap. Non-positive values are ignored.
func (c *Clock) SetMaxFrameMs(ms float64) {
	if ms > 0 {
		c.maxFrameMs = ms
	}
}

// Reset drops the residual and makes the next Advance a baseline call.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.lastMs = 0
	c.hasBaseline = false
}

func (c *Clock) Residual() float64 {
	return c.accumulator
}

// Alpha is the fraction of the next tick already elapsed, in [0, 1).
// Renderers use it to interpolate between ticks.
func (c *Clock) Alpha() float64 {
	a := c.accumulator / c.intervalMs
	if a >= 1 {
		return math.Nextafter(1, 0)
	}
	return a
}

func mustPositive(ms float64) {
	if !(ms > 0) || math.IsInf(ms, 0) {
		panic(fmt.Sprintf("clock: tick interval must be positive, got %v", ms))
	}
}
