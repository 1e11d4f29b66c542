package systems

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/shared/progression"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Fader ramps the full-screen overlay alpha. A fade that starts from a
// partially faded screen only runs for the remaining share of its duration.
type Fader struct {
	entry *donburi.Entry
	tween *gween.Tween
	dir   progression.FadeDirection

	active bool
	// done is set when a zero-length fade was requested; it completes on the
	// next Update.
	done bool
}

// NewFader attaches to the world's fade overlay, creating it on first use.
func NewFader(w donburi.World) *Fader {
	entry, ok := components.Fade.First(w)
	if !ok {
		entry = archetypes.Fade.Spawn(w)
	}
	return &Fader{entry: entry}
}

func (f *Fader) FadeOut(seconds float64) {
	f.start(progression.DirectionOut, 1, seconds*(1-f.Alpha()))
}

func (f *Fader) FadeIn(seconds float64) {
	f.start(progression.DirectionIn, 0, seconds*f.Alpha())
}

func (f *Fader) start(dir progression.FadeDirection, target, seconds float64) {
	f.dir = dir
	f.active = true
	if seconds <= 0 {
		f.tween = nil
		f.done = true
		f.setAlpha(target)
		return
	}
	f.done = false
	f.tween = gween.New(float32(f.Alpha()), float32(target), float32(seconds), ease.Linear)
}

// Update advances the running fade by dt seconds. It reports the direction of
// a fade that finished during this call; each requested fade finishes once.
func (f *Fader) Update(dt float64) (progression.FadeDirection, bool) {
	if !f.active {
		return f.dir, false
	}
	if f.done {
		f.active, f.done = false, false
		return f.dir, true
	}

	current, finished := f.tween.Update(float32(dt))
	f.setAlpha(float64(current))
	if !finished {
		return f.dir, false
	}
	f.active = false
	f.tween = nil
	return f.dir, true
}

// Active reports whether a fade is still running.
func (f *Fader) Active() bool {
	return f.active
}

// Cover snaps the overlay to opaque without running a fade. Scenes that start
// behind black call it before their first fade.
func (f *Fader) Cover() {
	f.setAlpha(1)
}

func (f *Fader) Alpha() float64 {
	return components.Fade.Get(f.entry).Alpha
}

func (f *Fader) setAlpha(a float64) {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	components.Fade.Get(f.entry).Alpha = a
}
