package assets

import (
	"fmt"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"

	"github.com/automoto/dizzy-ducklings/config"
)

var backgrounds = map[string]*ebiten.Image{}

// Background renders the tile layers of a map once and caches the result.
func Background(mapID string) (*ebiten.Image, error) {
	if bg, ok := backgrounds[mapID]; ok {
		return bg, nil
	}

	levelPath := path.Join(config.LevelsDir, mapID)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, levelFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", levelPath, err)
	}

	bg := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	for i, layer := range levelMap.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Warn("failed to render layer", "map", mapID, "layer", layer.Name, "error", err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	backgrounds[mapID] = bg
	return bg, nil
}
