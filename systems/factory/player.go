package factory

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player body centered on (x, y) together with its
// sprite.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	size := cfg.Player.CollisionSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{Facing: cfg.DirectionRight})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
		MaxFall: cfg.Physics.TerminalVelocity,
	})
	components.Movement.SetValue(player, components.MovementData{
		Speed:     cfg.Player.Speed,
		JumpSpeed: cfg.Player.JumpSpeed,
	})
	components.Motion.SetValue(player, components.NewMotion(math.Vec2{X: x, Y: y}))
	addToSpace(w, obj)

	CreateSprite(w, player, "player", cfg.Player.FrameSize, cfg.Player.SpriteOffset, cfg.AnimIdle)

	return player
}
