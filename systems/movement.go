package systems

import (
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RecordIntent turns the current input into the player's movement intent.
// It runs in the variable phase, before any fixed tick of the frame.
func RecordIntent(w donburi.World) {
	inputEntry, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	var x, y float64
	if input.Current[cfg.ActionMoveLeft] {
		x--
	}
	if input.Current[cfg.ActionMoveRight] {
		x++
	}
	if input.Current[cfg.ActionJump] {
		y++
	}
	x, y = gamemath.NormalizeIntent(x, y)

	components.MovementController.Each(w, func(e *donburi.Entry) {
		components.MovementController.Get(e).Intent = math.Vec2{X: x, Y: y}
	})
}

// ApplyMovement sets velocities for the fixed tick. Controlled bodies get
// their horizontal speed straight from the intent and may jump from the
// ground; every body falls under gravity up to its terminal speed.
func ApplyMovement(w donburi.World, dt float64) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		grounded := physics.OnGround != nil

		if e.HasComponent(components.MovementController) && e.HasComponent(components.Movement) {
			intent := components.MovementController.Get(e).Intent
			movement := components.Movement.Get(e)

			physics.SpeedX = movement.Speed * intent.X
			if intent.Y > 0 && grounded {
				physics.SpeedY = -movement.JumpSpeed
			}
			if e.HasComponent(components.Player) && intent.X != 0 {
				player := components.Player.Get(e)
				if intent.X < 0 {
					player.Facing = cfg.DirectionLeft
				} else {
					player.Facing = cfg.DirectionRight
				}
			}
		}

		if grounded && physics.SpeedY > 0 {
			physics.SpeedY = 0
		}
		physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, physics.Gravity, physics.MaxFall, dt)
	})
}
