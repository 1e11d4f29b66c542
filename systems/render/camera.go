// Package render draws the gameplay world. Every function here is an ecs
// renderer and only reads the world.
package render

import (
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// viewport is the visible world rectangle and the translation from world to
// screen space.
type viewport struct {
	minX, minY, maxX, maxY float64
	offX, offY             float64
}

// cameraView centers the camera on the screen. ok is false before a camera
// exists.
func cameraView(w donburi.World, screen *ebiten.Image, padding float64) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return viewport{
		minX: camera.Position.X - width/2 - padding,
		maxX: camera.Position.X + width/2 + padding,
		minY: camera.Position.Y - height/2 - padding,
		maxY: camera.Position.Y + height/2 + padding,
		offX: width/2 - camera.Position.X,
		offY: height/2 - camera.Position.Y,
	}, true
}

func (v viewport) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}
