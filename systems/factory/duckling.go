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

// CreateDuckling spawns a collectible duckling centered on (x, y). Ducklings
// fall under gravity and bounce off solids.
func CreateDuckling(w donburi.World, x, y float64) *donburi.Entry {
	duckling := archetypes.Duckling.Spawn(w)

	size := cfg.Duckling.CollisionSize
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvDuckling)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = duckling

	components.Object.SetValue(duckling, components.ObjectData{Object: obj})
	components.Physics.SetValue(duckling, components.PhysicsData{
		Gravity:     cfg.Physics.Gravity,
		MaxFall:     cfg.Physics.TerminalVelocity,
		Restitution: cfg.Duckling.Restitution,
	})
	components.Motion.SetValue(duckling, components.NewMotion(math.Vec2{X: x, Y: y}))
	addToSpace(w, obj)

	CreateSprite(w, duckling, "duckling", cfg.Duckling.FrameSize, cfg.Duckling.SpriteOffset, cfg.AnimDuckling)

	return duckling
}
