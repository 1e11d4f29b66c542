package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var hudOp = &text.DrawOptions{}

// NewDrawHUD returns a renderer for the duckling counter, the level number
// and the level stopwatch. levelCount is the catalog size.
func NewDrawHUD(levelCount int) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		levelEntry, ok := components.Level.First(e.World)
		if !ok {
			return
		}
		scoreEntry, ok := components.Score.First(e.World)
		if !ok {
			return
		}
		level := components.Level.Get(levelEntry)
		score := components.Score.Get(scoreEntry)

		face := fonts.HUD.Face()
		margin := cfg.HUD.Margin
		lineHeight := cfg.HUD.FontSize * 1.4

		drawShadowed(screen, fmt.Sprintf("Ducklings %d/%d", score.Collected, score.Total), face, margin, margin, text.AlignStart)
		drawShadowed(screen, fmt.Sprintf("Level %d/%d", level.Index+1, levelCount), face, margin, margin+lineHeight, text.AlignStart)

		width := float64(screen.Bounds().Dx())
		drawShadowed(screen, fmt.Sprintf("%.1fs", score.LevelSeconds), face, width-margin, margin, text.AlignEnd)
	}
}

func drawShadowed(screen *ebiten.Image, s string, face text.Face, x, y float64, align text.Align) {
	drawText(screen, s, face, x+1, y+1, align, cfg.HUD.Shadow)
	drawText(screen, s, face, x, y, align, cfg.HUD.TextColor)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, c color.Color) {
	hudOp.GeoM.Reset()
	hudOp.ColorScale.Reset()
	hudOp.GeoM.Translate(x, y)
	hudOp.ColorScale.ScaleWithColor(c)
	hudOp.PrimaryAlign = align
	text.Draw(screen, s, face, hudOp)
}
