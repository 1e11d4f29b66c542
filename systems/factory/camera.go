package factory

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera returns the camera, creating it on first use. The camera
// outlives levels.
func CreateCamera(w donburi.World, at math.Vec2) *donburi.Entry {
	if camera, ok := components.Camera.First(w); ok {
		return camera
	}
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{Position: at})
	return camera
}
