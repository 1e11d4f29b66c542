package render

import (
	"github.com/automoto/dizzy-ducklings/assets"
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var levelOp = &ebiten.DrawImageOptions{}

// DrawLevel draws the pre-rendered tile layers of the spawned level.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraView(e.World, screen, 0)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return
	}

	bg, err := assets.Background(level.Definition.Map)
	if err != nil {
		log.Warn("no level background", "map", level.Definition.Map, "error", err)
		return
	}

	levelOp.GeoM.Reset()
	levelOp.GeoM.Translate(view.offX, view.offY)
	screen.DrawImage(bg, levelOp)
}
