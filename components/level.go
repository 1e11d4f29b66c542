package components

import (
	"github.com/automoto/dizzy-ducklings/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Index      int
	Definition leveldata.LevelDefinition
	Map        *leveldata.MapData
}

// PixelSize returns the level map size in pixels, or zero without a map.
func (l *LevelData) PixelSize() (float64, float64) {
	if l.Map == nil {
		return 0, 0
	}
	w, h := l.Map.PixelSize()
	return float64(w), float64(h)
}

var Level = donburi.NewComponentType[LevelData]()
