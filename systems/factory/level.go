package factory

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/shared/leveldata"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, index int, def leveldata.LevelDefinition, m *leveldata.MapData) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Index:      index,
		Definition: def,
		Map:        m,
	})
	return level
}
