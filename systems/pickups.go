package systems

import (
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/systems/factory"
	"github.com/automoto/dizzy-ducklings/tags"
	"github.com/yohamta/donburi"
)

// LevelEvents receives gameplay results from the fixed tick. The progression
// controller implements it.
type LevelEvents interface {
	OnCollectibleCollected()
	RequestLevelEnd() bool
}

// UpdatePickups collects every duckling the player touches and asks for a
// level end when the player stands in a finish area.
func UpdatePickups(w donburi.World, events LevelEvents) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	check := playerObj.Check(0, 0, tags.ResolvDuckling, tags.ResolvFinish)
	if check == nil {
		return
	}

	for _, obj := range check.ObjectsByTags(tags.ResolvDuckling) {
		if !overlapsX(playerObj, obj) || !overlapsY(playerObj, obj) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		factory.Despawn(w, entry)
		events.OnCollectibleCollected()
	}

	for _, obj := range check.ObjectsByTags(tags.ResolvFinish) {
		if !overlapsX(playerObj, obj) || !overlapsY(playerObj, obj) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		components.FinishPoint.Get(entry).Reached = true
		events.RequestLevelEnd()
	}
}
