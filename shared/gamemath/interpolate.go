package gamemath

import "github.com/yohamta/donburi/features/math"

// Lerp returns a + (b-a)*t componentwise. t is not clamped.
func Lerp(a, b math.Vec2, t float64) math.Vec2 {
	return math.Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// SpriteLocal returns the local offset for a child sprite so that it is drawn
// at the parent's interpolated position while staying attached to the parent's
// physics position.
func SpriteLocal(visual, parentPhysical, offset math.Vec2) math.Vec2 {
	return math.Vec2{
		X: visual.X - parentPhysical.X + offset.X,
		Y: visual.Y - parentPhysical.Y + offset.Y,
	}
}
