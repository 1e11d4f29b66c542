package scenes

import (
	"sync"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// CreditsScene lists the credits until Back is chosen
type CreditsScene struct {
	sceneChanger SceneChanger
	creditsUI    *ui.CreditsUI
	input        components.InputData
	once         sync.Once
	done         bool
}

func NewCreditsScene(sc SceneChanger) *CreditsScene {
	return &CreditsScene{sceneChanger: sc}
}

func (cs *CreditsScene) Update() {
	cs.once.Do(cs.configure)
	pollActions(&cs.input)
	cs.creditsUI.Update()
	if justPressed(&cs.input, cfg.ActionMenuBack) || justPressed(&cs.input, cfg.ActionMenuSelect) {
		cs.back()
	}
}

func (cs *CreditsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	if cs.creditsUI == nil {
		return
	}
	cs.creditsUI.Draw(screen)
}

func (cs *CreditsScene) configure() {
	cs.creditsUI = ui.NewCreditsUI(cs.back)
	primeActions(&cs.input)
}

func (cs *CreditsScene) back() {
	if cs.done {
		return
	}
	cs.done = true
	cs.sceneChanger.ChangeScene(NewTitleScene(cs.sceneChanger))
}
