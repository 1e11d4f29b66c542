package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MotionData splits an entity's position into the last two fixed-step results
// and the interpolated position drawn this frame.
type MotionData struct {
	Previous math.Vec2 // position before the latest fixed step
	Physical math.Vec2 // position after the latest fixed step
	Visual   math.Vec2 // interpolated, written once per frame
}

var Motion = donburi.NewComponentType[MotionData]()

// NewMotion returns motion state with every sample at the spawn position, so
// the first frame cannot lerp from the origin.
func NewMotion(spawn math.Vec2) MotionData {
	return MotionData{Previous: spawn, Physical: spawn, Visual: spawn}
}
