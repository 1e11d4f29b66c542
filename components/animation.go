package components

import (
	"github.com/automoto/dizzy-ducklings/assets/animations"
	"github.com/automoto/dizzy-ducklings/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Current          config.AnimationID
	Animations       map[config.AnimationID]*animations.Animation
}

// SetAnimation switches to id, restarting it only when it changes.
func (a *AnimationData) SetAnimation(id config.AnimationID) {
	if a.Current == id && a.CurrentAnimation != nil {
		return
	}
	anim, ok := a.Animations[id]
	if !ok {
		a.CurrentAnimation = nil
		a.Current = id
		return
	}
	a.CurrentAnimation = anim
	a.Current = id
	anim.Restart()
}

// Frame returns the current frame index, or 0 without an animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
