package factory

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/assets/animations"
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateSprite attaches a drawable child to parent. The sprite starts at the
// parent's position plus offset.
func CreateSprite(w donburi.World, parent *donburi.Entry, sheet string, size int, offset math.Vec2, anim cfg.AnimationID) *donburi.Entry {
	sprite := archetypes.Sprite.Spawn(w)

	components.Sprite.SetValue(sprite, components.SpriteData{
		Parent: parent.Entity(),
		Offset: offset,
		Local:  offset,
		Sheet:  sheet,
		Size:   size,
	})

	animData := components.AnimationData{Animations: animations.Set(sheet)}
	animData.SetAnimation(anim)
	components.Animation.SetValue(sprite, animData)

	return sprite
}

// SpriteOf returns the sprite whose parent is e.
func SpriteOf(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Sprite.Each(w, func(s *donburi.Entry) {
		if found == nil && components.Sprite.Get(s).Parent == e {
			found = s
		}
	})
	return found, found != nil
}
