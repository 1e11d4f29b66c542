package render

import (
	"image/color"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawFade covers the screen with the fade color at the overlay's opacity.
// It must be the last renderer.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	fadeEntry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	alpha := components.Fade.Get(fadeEntry).Alpha
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}

	// color.RGBA is premultiplied
	c := cfg.Fade.Color
	overlay := color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), overlay, false)
}
