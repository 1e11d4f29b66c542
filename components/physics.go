package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	SpeedX      float64
	SpeedY      float64
	Gravity     float64
	MaxFall     float64
	Restitution float64 // bounce factor for bodies without input; 0 stops dead

	// Filled by the collision step every fixed tick.
	Desired    math.Vec2      // displacement requested this tick
	Effective  math.Vec2      // displacement actually applied
	OnGround   *resolv.Object // nil when airborne
	BumpedHead bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
