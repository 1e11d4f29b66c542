package factory

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFinishPoint creates an area that ends the level when the player
// enters it.
func CreateFinishPoint(w donburi.World, x, y, width, height float64) *donburi.Entry {
	finish := archetypes.FinishPoint.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvFinish)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = finish

	components.Object.SetValue(finish, components.ObjectData{Object: obj})
	components.FinishPoint.SetValue(finish, components.FinishPointData{})
	addToSpace(w, obj)

	return finish
}
