package scenes

import (
	"sync"

	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene congratulates the player after the last level
type GameOverScene struct {
	sceneChanger SceneChanger
	result       components.OverallScoreData
	gameOverUI   *ui.GameOverUI
	input        components.InputData
	once         sync.Once
	done         bool
}

func NewGameOverScene(sc SceneChanger, result components.OverallScoreData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	pollActions(&gs.input)
	gs.gameOverUI.Update()
	if justPressed(&gs.input, cfg.ActionMenuSelect) {
		gs.continueToTitle()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)
	if gs.gameOverUI == nil {
		return
	}
	gs.gameOverUI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.gameOverUI = ui.NewGameOverUI(gs.result, gs.continueToTitle)
	primeActions(&gs.input)
}

func (gs *GameOverScene) continueToTitle() {
	if gs.done {
		return
	}
	gs.done = true
	gs.sceneChanger.ChangeScene(NewTitleScene(gs.sceneChanger))
}
