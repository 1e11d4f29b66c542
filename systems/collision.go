package systems

import (
	stdmath "math"

	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/shared/gamemath"
	"github.com/automoto/dizzy-ducklings/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCollisions moves every physics body by its velocity for one fixed
// tick, one axis at a time, stopping at solids. It records the desired and
// effective displacement and derives the ground and head-bump state from them.
func UpdateCollisions(w donburi.World, dt float64) {
	components.Physics.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		desired := math.Vec2{X: physics.SpeedX * dt, Y: physics.SpeedY * dt}
		effective := math.Vec2{
			X: moveX(obj, desired.X),
		}
		effective.Y = moveY(obj, desired.Y)
		obj.Update()

		physics.Desired = desired
		physics.Effective = effective

		if physics.Restitution > 0 {
			bounce(physics, desired, effective)
			return
		}
		updateGround(physics, obj, desired, effective)
	})
}

// moveX moves obj horizontally by up to dx and returns the distance moved.
func moveX(obj *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsY(obj, solid) {
				continue
			}
			dx = nearer(dx, check.ContactWithObject(solid).X())
		}
	}
	obj.X += dx
	return dx
}

// moveY moves obj vertically by up to dy and returns the distance moved.
func moveY(obj *resolv.Object, dy float64) float64 {
	if dy == 0 {
		return 0
	}
	if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsX(obj, solid) {
				continue
			}
			dy = nearer(dy, check.ContactWithObject(solid).Y())
		}
	}
	obj.Y += dy
	return dy
}

// contactEpsilon absorbs float drift between touching edges.
const contactEpsilon = 1e-6

// nearer shortens move to contact when contact lies ahead in the same
// direction. A contact behind the mover belongs to a solid it already passed.
func nearer(move, contact float64) float64 {
	if stdmath.Abs(contact) < contactEpsilon {
		contact = 0
	}
	switch {
	case move > 0 && contact >= 0 && contact < move:
		return contact
	case move < 0 && contact <= 0 && contact > move:
		return contact
	}
	return move
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// support returns the solid directly under obj, if any.
func support(obj *resolv.Object) *resolv.Object {
	check := obj.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlapsX(obj, solid) && stdmath.Abs(check.ContactWithObject(solid).Y()) < contactEpsilon {
			return solid
		}
	}
	return nil
}

func updateGround(physics *components.PhysicsData, obj *resolv.Object, desired, effective math.Vec2) {
	if physics.OnGround == nil {
		if gamemath.Landed(desired.Y, effective.Y) {
			physics.OnGround = support(obj)
		}
	} else if s := support(obj); s == nil {
		physics.OnGround = nil
	} else {
		physics.OnGround = s
	}

	physics.BumpedHead = gamemath.BumpedHead(desired.Y, effective.Y)
	if physics.BumpedHead {
		physics.SpeedY = 0
	}
}

// bounce reflects the velocity on every axis that was cut short.
func bounce(physics *components.PhysicsData, desired, effective math.Vec2) {
	if desired.X != effective.X {
		physics.SpeedX = -physics.SpeedX * physics.Restitution
	}
	if desired.Y != effective.Y {
		physics.SpeedY = -physics.SpeedY * physics.Restitution
	}
}
