package timestep

import (
	"testing"
	"time"
)

func TestAdvanceUnevenFrames(t *testing.T) {
	// 50 Hz gives an exact 20ms step.
	c := NewClock(50, 0)

	cases := []struct {
		frame    time.Duration
		ticks    int
		overstep float64
	}{
		{5 * time.Millisecond, 0, 0.25},
		{15 * time.Millisecond, 1, 0},
		{50 * time.Millisecond, 2, 0.5},
		{0, 0, 0.5},
		{10 * time.Millisecond, 1, 0},
		{39 * time.Millisecond, 1, 0.95},
	}
	for i, tc := range cases {
		got := c.Advance(tc.frame)
		if got != tc.ticks {
			t.Fatalf("frame %d: ticks = %d, want %d", i, got, tc.ticks)
		}
		if o := c.Overstep(); o != tc.overstep {
			t.Fatalf("frame %d: overstep = %v, want %v", i, o, tc.overstep)
		}
	}
	if c.Ticks() != 5 {
		t.Fatalf("Ticks = %d, want 5", c.Ticks())
	}
}

func TestOverstepStaysBelowOne(t *testing.T) {
	c := NewClock(60, 0)
	frames := []time.Duration{
		16 * time.Millisecond, 17 * time.Millisecond, 33 * time.Millisecond,
		1 * time.Millisecond, 7 * time.Millisecond, 16666666, 16666667,
	}
	for i := 0; i < 200; i++ {
		c.Advance(frames[i%len(frames)])
		if o := c.Overstep(); o < 0 || o >= 1 {
			t.Fatalf("overstep %v out of [0,1) at frame %d", o, i)
		}
	}
}

func TestMaxFrameCap(t *testing.T) {
	c := NewClock(50, 100*time.Millisecond)
	if got := c.Advance(3 * time.Second); got != 5 {
		t.Fatalf("ticks after stall = %d, want 5", got)
	}
	if c.Overstep() != 0 {
		t.Fatalf("overstep = %v, want 0", c.Overstep())
	}
}

func TestDefaults(t *testing.T) {
	c := NewClock(0, 0)
	if c.Step() != time.Second/60 {
		t.Fatalf("Step = %v", c.Step())
	}
	if got := c.Advance(time.Hour); got != int(DefaultMaxFrame/c.Step()) {
		t.Fatalf("ticks = %d after capped frame", got)
	}
}

func TestResetAndNegativeFrame(t *testing.T) {
	c := NewClock(50, 0)
	c.Advance(30 * time.Millisecond)
	c.Reset()
	if c.Overstep() != 0 || c.Ticks() != 0 {
		t.Fatalf("Reset left overstep %v ticks %d", c.Overstep(), c.Ticks())
	}
	if got := c.Advance(-time.Second); got != 0 || c.Overstep() != 0 {
		t.Fatalf("negative frame advanced the clock")
	}
	if c.Dt() != 0.02 {
		t.Fatalf("Dt = %v, want 0.02", c.Dt())
	}
}
