package clock

import (
	"math"
	"testing"
)

func TestFirstAdvanceIsBaseline(t *testing.T) {
	c := New(100)

	if n := c.Advance(5000); n != 0 {
		t.Fatalf("Expected 0 ticks on baseline, got %d", n)
	}
	if n := c.Advance(5099); n != 0 {
		t.Errorf("Expected 0 ticks before a full interval, got %d", n)
	}
	if n := c.Advance(5100); n != 1 {
		t.Errorf("Expected 1 tick at a full interval, got %d", n)
	}
}

func TestResidualCarriesForward(t *testing.T) {
	c := New(100)
	t0 := 1000.0

	total := c.Advance(t0)
	total += c.Advance(t0 + 250)
	if total != 2 {
		t.Fatalf("Expected 2 ticks, got %d", total)
	}
	if r := c.Residual(); r != 50 {
		t.Fatalf("Expected 50ms residual, got %v", r)
	}
	if n := c.Advance(t0 + 300); n != 1 {
		t.Errorf("Expected exactly 1 more tick, got %d", n)
	}
}

func TestLongRunRateMatchesInterval(t *testing.T) {
	c := New(110)
	c.Advance(0)

	total := 0
	// Uneven 60Hz-ish frames for 11 seconds.
	ts := 0.0
	for i := 0; ts < 11000; i++ {
		ts += 16 + float64(i%3)
		total += c.Advance(ts)
	}

	want := int(math.Floor(ts / 110))
	if total != want {
		t.Errorf("Expected %d ticks over %vms, got %d", want, ts, total)
	}
}

func TestLateFrameIsClamped(t *testing.T) {
	c := New(100)
	c.Advance(0)

	if n := c.Advance(60000); n != 2 {
		t.Errorf("Expected clamp to 250ms (2 ticks), got %d", n)
	}
	if r := c.Residual(); r != 50 {
		t.Errorf("Expected 50ms residual after clamp, got %v", r)
	}

	c.SetMaxFrameMs(1000)
	if n := c.Advance(70000); n != 10 {
		t.Errorf("Expected 10 ticks with 1s cap, got %d", n)
	}
}

func TestBackwardsAndNaNTimestampsAreIgnored(t *testing.T) {
	c := New(100)
	c.Advance(1000)

	if n := c.Advance(900); n != 0 {
		t.Errorf("Expected 0 ticks for negative delta, got %d", n)
	}
	if n := c.Advance(math.NaN()); n != 0 {
		t.Errorf("Expected 0 ticks for NaN, got %d", n)
	}
	if n := c.Advance(1100); n != 1 {
		t.Errorf("Expected 1 tick measured from last good timestamp, got %d", n)
	}
}

func TestNaNBaselineIsSkipped(t *testing.T) {
	c := New(100)

	c.Advance(math.NaN())
	if n := c.Advance(500); n != 0 {
		t.Errorf("Expected the first real timestamp to become the baseline, got %d ticks", n)
	}
}

func TestSetTickIntervalIsProspective(t *testing.T) {
	c := New(100)
	c.Advance(0)
	c.Advance(150)

	c.SetTickIntervalMs(25)
	if r := c.Residual(); r != 50 {
		t.Fatalf("Residual changed on interval switch: %v", r)
	}
	if n := c.Advance(150); n != 2 {
		t.Errorf("Expected residual 50ms to yield 2 ticks at 25ms, got %d", n)
	}
}

func TestReset(t *testing.T) {
	c := New(100)
	c.Advance(0)
	c.Advance(180)

	c.Reset()
	if c.Residual() != 0 {
		t.Fatalf("Expected zero residual after reset")
	}
	if n := c.Advance(10000); n != 0 {
		t.Errorf("Expected baseline after reset, got %d ticks", n)
	}
	if n := c.Advance(10100); n != 1 {
		t.Errorf("Expected 1 tick, got %d", n)
	}
}

func TestAlpha(t *testing.T) {
	c := New(100)
	c.Advance(0)
	c.Advance(125)

	if a := c.Alpha(); math.Abs(a-0.25) > 1e-9 {
		t.Errorf("Expected alpha 0.25, got %v", a)
	}
}

func TestNewPanicsOnBadInterval(t *testing.T) {
	for _, ms := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for interval %v", ms)
				}
			}()
			New(ms)
		}()
	}
}
