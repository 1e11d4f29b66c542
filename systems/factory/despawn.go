package factory

import (
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/tags"
	"github.com/yohamta/donburi"
)

// Despawn removes e, its collision object and its sprite children.
func Despawn(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if child, ok := SpriteOf(w, e.Entity()); ok {
		w.Remove(child.Entity())
	}
	removeObject(w, e)
	w.Remove(e.Entity())
}

// DespawnLevel removes every level-scoped entity and reports how many were
// removed. Calling it with nothing spawned is a no-op.
func DespawnLevel(w donburi.World) int {
	var doomed []*donburi.Entry
	tags.LevelScoped.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})

	for _, e := range doomed {
		removeObject(w, e)
	}
	for _, e := range doomed {
		w.Remove(e.Entity())
	}
	return len(doomed)
}

func removeObject(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return
	}
	obj.Space.Remove(obj.Object)
}
