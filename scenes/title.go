package scenes

import (
	"sync"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/shared/progression"
	"github.com/automoto/dizzy-ducklings/systems"
	"github.com/automoto/dizzy-ducklings/systems/render"
	"github.com/automoto/dizzy-ducklings/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the title menu. Play fades to black before the game starts.
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	fader        *systems.Fader
	input        components.InputData
	timer        frameTimer
	once         sync.Once
	leaving      bool
}

func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	dt := ts.timer.Next().Seconds()
	pollActions(&ts.input)

	if !ts.leaving {
		ts.titleUI.Update()
		if justPressed(&ts.input, cfg.ActionMenuSelect) {
			ts.play()
		}
	}

	if dir, done := ts.fader.Update(dt); done && dir == progression.DirectionOut {
		ts.sceneChanger.ChangeScene(NewPlayingScene(ts.sceneChanger))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	if ts.ecs == nil {
		return
	}
	ts.titleUI.Draw(screen)
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	w := donburi.NewWorld()
	ts.ecs = ecs.NewECS(w)
	ts.ecs.AddRenderer(layerOverlay, render.DrawFade)

	ts.fader = systems.NewFader(w)
	ts.fader.Cover()
	ts.fader.FadeIn(cfg.Progression.FadeSeconds)

	primeActions(&ts.input)

	settings := systems.GetOrCreateSettings(w)
	ts.titleUI = ui.NewTitleUI(settings.Fullscreen, ui.TitleActions{
		Play: ts.play,
		ToggleFullscreen: func() bool {
			on := systems.ToggleFullscreen(w)
			ebiten.SetFullscreen(on)
			return on
		},
		Credits: func() {
			if !ts.leaving {
				ts.sceneChanger.ChangeScene(NewCreditsScene(ts.sceneChanger))
			}
		},
		Exit: ts.sceneChanger.Quit,
	})
}

func (ts *TitleScene) play() {
	if ts.leaving {
		return
	}
	ts.leaving = true
	ts.fader.FadeOut(cfg.Progression.FadeSeconds)
}
