// dizzy-ducklings is a small platformer: collect every duckling on a level
// to move on to the next one.
//
// Usage:
//
//	dizzy-ducklings [--config tuning.yaml] [--debug] [--level N] [--tick-rate HZ] [--skip-title]
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/dizzy-ducklings/assets"
	"github.com/automoto/dizzy-ducklings/config"
	"github.com/automoto/dizzy-ducklings/fonts"
	"github.com/automoto/dizzy-ducklings/scenes"
	"github.com/automoto/dizzy-ducklings/systems"
)

const appName = "dizzy-ducklings"

var (
	flagConfig    string
	flagDebug     bool
	flagLevel     int
	flagTickRate  float64
	flagSkipTitle bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle {
		g.scene = scenes.NewPlayingScene(g)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Dizzy Ducklings - gather the ducklings, level by level",
	Long: `Dizzy Ducklings is a platformer. Each level hides a few ducklings;
collect all of them to fade into the next level. Finish the last level to
see your completion time.

Controls:
  Left/Right, A/D   - Move
  Up/W/Space        - Jump
  Enter             - Select
  Esc               - Back to the title
  F1                - Toggle collision boxes

Examples:
  dizzy-ducklings
  dizzy-ducklings --level 4 --skip-title
  dizzy-ducklings --config ./tuning.yaml --debug`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and collision boxes")
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	rootCmd.Flags().Float64Var(&flagTickRate, "tick-rate", 0, "Fixed simulation ticks per second (0 = configured rate)")
	rootCmd.Flags().BoolVar(&flagSkipTitle, "skip-title", false, "Start a game without the title screen")
}

func run(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
		config.Debug.DrawBoxes = true
	}

	path, err := config.LoadOverrides(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("loaded tuning", "path", path)
	}

	if flagTickRate > 0 {
		config.Timestep.TickRate = flagTickRate
	}
	catalog := config.DefaultCatalog()
	if flagLevel < 1 || flagLevel > catalog.Len() {
		return fmt.Errorf("level %d out of range 1-%d", flagLevel, catalog.Len())
	}
	config.Debug.StartLevel = flagLevel - 1
	config.Debug.SkipTitle = flagSkipTitle

	fonts.LoadDefaults(config.HUD.FontSize, config.Menu.ButtonFontSize, config.Menu.TitleFontSize)

	// Settings and records are optional; the game runs without them
	if err := systems.InitPersistence(appName); err != nil {
		log.Warn("could not initialize persistence", "error", err)
	}
	if saved, _ := systems.LoadSettings(); saved != nil {
		ebiten.SetFullscreen(saved.Fullscreen)
	}

	maps := make([]string, 0, catalog.Len())
	for _, def := range catalog.Levels() {
		maps = append(maps, def.Map)
	}
	assets.PreloadAll(maps)

	// Fixed ticks are counted by the simulation clock; Update runs once per frame
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
