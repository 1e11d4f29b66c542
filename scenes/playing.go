package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dizzy-ducklings/assets"
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/shared/leveldata"
	"github.com/automoto/dizzy-ducklings/shared/progression"
	"github.com/automoto/dizzy-ducklings/systems"
	"github.com/automoto/dizzy-ducklings/systems/render"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PlayingScene runs a game from the first level to the last.
type PlayingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	sim          *systems.Simulation
	maps         *leveldata.AsyncLoader
	input        components.InputData
	timer        frameTimer
	once         sync.Once

	// next is a scene change requested during the frame, applied after it.
	next interface{}
}

func NewPlayingScene(sc SceneChanger) *PlayingScene {
	return &PlayingScene{sceneChanger: sc}
}

func (ps *PlayingScene) Update() {
	ps.once.Do(ps.configure)
	pollActions(&ps.input)

	if justPressed(&ps.input, cfg.ActionToggleDebug) {
		cfg.Debug.DrawBoxes = !cfg.Debug.DrawBoxes
	}
	if justPressed(&ps.input, cfg.ActionMenuBack) && ps.next == nil {
		log.Info("game abandoned", "level", ps.sim.Controller().Index())
		ps.next = NewTitleScene(ps.sceneChanger)
	}

	if ps.next == nil {
		ps.sim.SetInput(ps.input.Current)
		ps.sim.Frame(ps.timer.Next())
	}

	if ps.next != nil {
		next := ps.next
		ps.next = nil
		ps.sceneChanger.ChangeScene(next)
	}
}

func (ps *PlayingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayingScene) configure() {
	catalog := cfg.DefaultCatalog()
	ps.maps = leveldata.NewAsyncLoader(assets.LevelFS(), cfg.LevelsDir)

	ps.sim = systems.NewSimulation(systems.SimulationConfig{
		Catalog:  catalog,
		Maps:     ps.maps,
		Screens:  playingScreens{ps},
		TickRate: cfg.Timestep.TickRate,
		MaxFrame: cfg.Timestep.MaxFrame,
		Options: progression.Options{
			FadeSeconds:    cfg.Progression.FadeSeconds,
			MinTicksToEnd:  cfg.Progression.MinTicksToEnd,
			MapLoadTimeout: cfg.Progression.MapLoadTimeout,
			StartLevel:     cfg.Debug.StartLevel,
		},
	})

	ps.ecs = ecs.NewECS(ps.sim.World())
	ps.ecs.AddRenderer(layerWorld, render.DrawLevel)
	ps.ecs.AddRenderer(layerWorld, render.DrawSprites)
	ps.ecs.AddRenderer(layerWorld, render.DrawDebug)
	ps.ecs.AddRenderer(layerOverlay, render.NewDrawHUD(catalog.Len()))
	ps.ecs.AddRenderer(layerOverlay, render.DrawFade)

	primeActions(&ps.input)

	// The title screen faded to black already
	ps.sim.Fader().Cover()
	ps.sim.StartNewGame()
}

// playingScreens switches away from gameplay when the controller asks to.
type playingScreens struct {
	ps *PlayingScene
}

func (s playingScreens) ShowGameOver() {
	s.ps.next = NewGameOverScene(s.ps.sceneChanger, *s.ps.sim.Score().Overall())
}

func (s playingScreens) ShowTitle() {
	s.ps.next = NewTitleScene(s.ps.sceneChanger)
}
