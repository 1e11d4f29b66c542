package systems

import (
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SnapshotMotion runs first in every fixed tick. It records the last fixed
// result as the lerp start.
func SnapshotMotion(w donburi.World) {
	components.Motion.Each(w, func(e *donburi.Entry) {
		m := components.Motion.Get(e)
		if e.HasComponent(components.Object) {
			m.Physical = objectCenter(components.Object.Get(e).Object)
		}
		m.Previous = m.Physical
	})
}

// SyncPhysical copies collision object positions into Physical after the
// fixed tick has moved them.
func SyncPhysical(w donburi.World) {
	components.Motion.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		components.Motion.Get(e).Physical = objectCenter(components.Object.Get(e).Object)
	})
}

// InterpolateMotion sets Visual between the last two fixed results. overstep
// is the fraction of a tick the fixed clock is ahead of the last result.
func InterpolateMotion(w donburi.World, overstep float64) {
	components.Motion.Each(w, func(e *donburi.Entry) {
		m := components.Motion.Get(e)
		m.Visual = gamemath.Lerp(m.Previous, m.Physical, overstep)
	})
}

// ApplySpriteOffsets moves every sprite to its parent's interpolated position.
// Sprites whose parent is gone or has no motion keep their last offset.
func ApplySpriteOffsets(w donburi.World) {
	components.Sprite.Each(w, func(e *donburi.Entry) {
		s := components.Sprite.Get(e)
		if !w.Valid(s.Parent) {
			return
		}
		parent := w.Entry(s.Parent)
		if !parent.HasComponent(components.Motion) {
			return
		}
		m := components.Motion.Get(parent)
		s.Local = gamemath.SpriteLocal(m.Visual, m.Physical, s.Offset)
	})
}

// SpriteWorldPosition returns where a sprite is drawn: its parent's physics
// position plus the sprite's local offset.
func SpriteWorldPosition(w donburi.World, e *donburi.Entry) (math.Vec2, bool) {
	s := components.Sprite.Get(e)
	if !w.Valid(s.Parent) {
		return math.Vec2{}, false
	}
	parent := w.Entry(s.Parent)
	if !parent.HasComponent(components.Motion) {
		return math.Vec2{}, false
	}
	p := components.Motion.Get(parent).Physical
	return math.Vec2{X: p.X + s.Local.X, Y: p.Y + s.Local.Y}, true
}

func objectCenter(obj *resolv.Object) math.Vec2 {
	return math.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}
