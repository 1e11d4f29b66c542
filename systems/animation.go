package systems

import (
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimations picks idle or walk for controlled sprites, flips them to
// face the direction of travel and steps every animation by one fixed tick.
func UpdateAnimations(w donburi.World) {
	components.Sprite.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		sprite := components.Sprite.Get(e)
		anim := components.Animation.Get(e)

		if w.Valid(sprite.Parent) {
			parent := w.Entry(sprite.Parent)
			if parent.HasComponent(components.MovementController) {
				intent := components.MovementController.Get(parent).Intent
				if intent.X == 0 && intent.Y == 0 {
					anim.SetAnimation(cfg.AnimIdle)
				} else {
					anim.SetAnimation(cfg.AnimWalk)
				}
			}
			if parent.HasComponent(components.Player) {
				sprite.FlipX = components.Player.Get(parent).Facing == cfg.DirectionLeft
			}
		}

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
