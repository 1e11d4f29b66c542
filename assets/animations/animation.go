// Package animations steps frame-indexed sprite sheet animations. It is
// advanced once per fixed tick and holds no image data.
package animations

import "github.com/automoto/dizzy-ducklings/config"

type Animation struct {
	First int
	Last  int
	Step  int     // frame indices to move per advance
	Speed float32 // fixed ticks each frame stays on screen

	counter float32
	frame   int
	Looped  bool
}

// Update advances the animation by one fixed tick.
func (a *Animation) Update() {
	a.counter -= 1.0
	if a.counter > 0.0 {
		return
	}
	a.counter = a.Speed
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.Speed
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:   first,
		Last:    last,
		Step:    step,
		Speed:   speed,
		counter: speed,
		frame:   first,
	}
}

// FromDef builds an animation from a config definition.
func FromDef(def config.AnimationDef) *Animation {
	return NewAnimation(def.First, def.Last, def.Step, def.Speed)
}

// Set builds one fresh animation per definition of the given sheet.
func Set(sheet string) map[config.AnimationID]*Animation {
	defs := config.CharacterAnimations[sheet]
	out := make(map[config.AnimationID]*Animation, len(defs))
	for id, def := range defs {
		out[id] = FromDef(def)
	}
	return out
}
