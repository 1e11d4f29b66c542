package archetypes

import (
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.LevelScoped,
		components.Player,
		components.Object,
		components.Physics,
		components.Motion,
		components.Movement,
		components.MovementController,
	)
	Duckling = newArchetype(
		tags.Duckling,
		tags.LevelScoped,
		components.Object,
		components.Physics,
		components.Motion,
	)
	Sprite = newArchetype(
		tags.LevelScoped,
		components.Sprite,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		tags.LevelScoped,
		components.Object,
	)
	FinishPoint = newArchetype(
		tags.FinishPoint,
		tags.LevelScoped,
		components.FinishPoint,
		components.Object,
	)
	Space = newArchetype(
		tags.LevelScoped,
		components.Space,
	)
	Level = newArchetype(
		tags.LevelScoped,
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Score = newArchetype(
		components.Score,
		components.OverallScore,
	)
	Fade = newArchetype(
		components.Fade,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
