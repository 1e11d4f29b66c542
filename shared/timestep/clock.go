// Package timestep splits variable frame time into fixed simulation ticks.
package timestep

import "time"

const (
	DefaultTickRate = 60
	DefaultMaxFrame = 250 * time.Millisecond
)

// Clock is a fixed-step accumulator. Advance is called once per rendered frame
// with the frame's duration and returns how many fixed ticks to run; Overstep
// then gives the fraction of a tick left over for interpolation.
type Clock struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
	ticks    uint64
}

// NewClock returns a clock running tickRate fixed ticks per second. Frames
// longer than maxFrame are cut down to it so a long stall cannot queue an
// unbounded number of ticks.
func NewClock(tickRate float64, maxFrame time.Duration) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	step := time.Duration(float64(time.Second) / tickRate)
	if step <= 0 {
		step = 1
	}
	return &Clock{step: step, maxFrame: maxFrame}
}

func (c *Clock) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	if frame > c.maxFrame {
		frame = c.maxFrame
	}
	c.acc += frame

	n := 0
	for c.acc >= c.step {
		c.acc -= c.step
		n++
	}
	c.ticks += uint64(n)
	return n
}

// Overstep is the fraction of a tick accumulated since the last one, in [0, 1).
func (c *Clock) Overstep() float64 {
	return float64(c.acc) / float64(c.step)
}

// Dt is the fixed tick length in seconds.
func (c *Clock) Dt() float64 {
	return c.step.Seconds()
}

func (c *Clock) Step() time.Duration {
	return c.step
}

// Ticks is the number of fixed ticks produced since creation or Reset.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

func (c *Clock) Reset() {
	c.acc = 0
	c.ticks = 0
}
