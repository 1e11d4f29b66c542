package render

import (
	"github.com/automoto/dizzy-ducklings/assets"
	"github.com/automoto/dizzy-ducklings/components"
	"github.com/automoto/dizzy-ducklings/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spriteOp = &ebiten.DrawImageOptions{}

// Sprites a little outside the screen are still drawn so they do not pop in
// at the edges.
const cullPadding = 64.0

// DrawSprites draws every sprite at its parent's interpolated position.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraView(e.World, screen, cullPadding)
	if !ok {
		return
	}

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		pos, ok := systems.SpriteWorldPosition(e.World, entry)
		if !ok {
			return
		}
		sprite := components.Sprite.Get(entry)
		half := float64(sprite.Size) / 2
		if !view.visible(pos.X-half, pos.Y-half, float64(sprite.Size), float64(sprite.Size)) {
			return
		}

		frame := 0
		if entry.HasComponent(components.Animation) {
			frame = components.Animation.Get(entry).Frame()
		}
		img := assets.GetFrame(sprite.Sheet, frame, sprite.Size)

		spriteOp.GeoM.Reset()
		// Anchor at the frame center
		spriteOp.GeoM.Translate(-half, -half)
		if sprite.FlipX {
			spriteOp.GeoM.Scale(-1, 1)
		}
		spriteOp.GeoM.Translate(pos.X+view.offX, pos.Y+view.offY)
		screen.DrawImage(img, spriteOp)
	})
}
