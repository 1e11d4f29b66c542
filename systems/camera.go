package systems

import (
	stdmath "math"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera toward the player's drawn position. The
// camera speeds up the further behind it is and holds still inside the dead
// zone.
func UpdateCamera(w donburi.World, dt float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	target := components.Motion.Get(playerEntry).Visual

	dx := target.X - camera.Position.X
	dy := target.Y - camera.Position.Y
	distance := stdmath.Hypot(dx, dy)
	if distance <= cfg.Camera.DeadZone {
		return
	}

	step := (cfg.Camera.BaseSpeed + distance*cfg.Camera.DistanceSpeed) * dt
	if step >= distance {
		camera.Position = target
		return
	}
	camera.Position.X += dx / distance * step
	camera.Position.Y += dy / distance * step
}
