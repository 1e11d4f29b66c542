package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/features/math"
)

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	Title    string
	TileSize float64
}

// PhysicsConfig contains world physics values. Units are pixels and seconds,
// y pointing down.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	CellSize         int     `yaml:"cell_size"` // resolv space cell size
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`

	// Dimensions
	CollisionSize float64   `yaml:"-"`
	FrameSize     int       `yaml:"-"`
	SpriteOffset  math.Vec2 `yaml:"-"` // aligns the sprite with the collider
}

// DucklingConfig contains the collectible configuration values
type DucklingConfig struct {
	Restitution   float64   `yaml:"restitution"`
	CollisionSize float64   `yaml:"-"`
	FrameSize     int       `yaml:"-"`
	SpriteOffset  math.Vec2 `yaml:"-"`
}

// ProgressionConfig contains level progression tuning
type ProgressionConfig struct {
	FadeSeconds   float64 `yaml:"fade_seconds"`
	MinTicksToEnd int     `yaml:"min_ticks_to_end"`
	// Fixed ticks to wait for a level map before returning to the title.
	// Zero waits forever.
	MapLoadTimeout int `yaml:"map_load_timeout"`
}

// TimestepConfig contains the fixed simulation rate
type TimestepConfig struct {
	TickRate float64       `yaml:"tick_rate"`
	MaxFrame time.Duration `yaml:"max_frame"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`     // px/s when the target is 1px away
	DistanceSpeed float64 `yaml:"distance_speed"` // extra px/s per px of distance
	DeadZone      float64 `yaml:"dead_zone"`      // distance below which the camera holds still
}

// HUDConfig contains in-game overlay configuration
type HUDConfig struct {
	FontSize  float64
	Margin    float64
	TextColor color.RGBA
	Shadow    color.RGBA
}

// FadeConfig contains the screen fade overlay configuration
type FadeConfig struct {
	Color color.RGBA
}

// MenuConfig contains title, credits and game over screen configuration
type MenuConfig struct {
	BackgroundColor   color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	ButtonText        color.RGBA
	LabelText         color.RGBA
	HeaderText        color.RGBA
	TitleFontSize     float64
	ButtonFontSize    float64
	ButtonWidth       int
	ButtonHeight      int
	Spacing           int
	TitleText         string
	CreditsLines      []string
	CongratsText      string
	CompletedInText   string
	BestTimeText      string
	NewBestText       string
	ContinueText      string
	BackText          string
	PlayText          string
	CreditsButtonText string
	ExitText          string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle  bool // Skip the title and start a game directly
	StartLevel int  // Level index to start at (for testing)
	DrawBoxes  bool // Draw collision boxes
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Duckling DucklingConfig
var Progression ProgressionConfig
var Timestep TimestepConfig
var Camera CameraConfig
var HUD HUDConfig
var Fade FadeConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ShadowBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	ButtonText   = color.RGBA{R: 236, G: 236, B: 236, A: 255}
	Straw        = color.RGBA{R: 221, G: 211, B: 105, A: 255}
	Rust         = color.RGBA{R: 148, G: 76, B: 26, A: 255}
	RustHover    = color.RGBA{R: 172, G: 114, B: 89, A: 255}
	RustPressed  = color.RGBA{R: 110, G: 52, B: 0, A: 255}
	NodeBrown    = color.RGBA{R: 149, G: 75, B: 27, A: 255}
	SkyBlue      = color.RGBA{R: 106, G: 190, B: 230, A: 255}
	CollisionRed = color.RGBA{R: 255, G: 0, B: 0, A: 120}
)

func init() {
	C = &Config{
		Width:    960,
		Height:   540,
		Title:    "Dizzy Ducklings",
		TileSize: 32,
	}

	Physics = PhysicsConfig{
		Gravity:          9.81 * 32 * 4,
		TerminalVelocity: 420,
		CellSize:         16,
	}

	Player = PlayerConfig{
		Speed:         200,
		JumpSpeed:     400,
		CollisionSize: 23,
		FrameSize:     32,
		SpriteOffset:  math.Vec2{X: 0, Y: -4},
	}

	Duckling = DucklingConfig{
		Restitution:   1,
		CollisionSize: 20,
		FrameSize:     32,
		SpriteOffset:  math.Vec2{X: 2, Y: -1},
	}

	Progression = ProgressionConfig{
		FadeSeconds:    0.5,
		MinTicksToEnd:  10,
		MapLoadTimeout: 640, // 10s at 64Hz
	}

	Timestep = TimestepConfig{
		TickRate: 64,
		MaxFrame: 250 * time.Millisecond,
	}

	Camera = CameraConfig{
		BaseSpeed:     20,
		DistanceSpeed: 5,
		DeadZone:      1,
	}

	HUD = HUDConfig{
		FontSize:  16,
		Margin:    12,
		TextColor: White,
		Shadow:    ShadowBlack,
	}

	Fade = FadeConfig{
		Color: Black,
	}

	Menu = MenuConfig{
		BackgroundColor:   NodeBrown,
		ButtonIdle:        Rust,
		ButtonHover:       RustHover,
		ButtonPressed:     RustPressed,
		ButtonText:        ButtonText,
		LabelText:         Straw,
		HeaderText:        Straw,
		TitleFontSize:     48,
		ButtonFontSize:    24,
		ButtonWidth:       280,
		ButtonHeight:      56,
		Spacing:           14,
		TitleText:         "DIZZY DUCKLINGS",
		CongratsText:      "Congratulations",
		CompletedInText:   "You completed the game in",
		BestTimeText:      "Best time",
		NewBestText:       "New best time!",
		ContinueText:      "Continue",
		BackText:          "Back",
		PlayText:          "Play",
		CreditsButtonText: "Credits",
		ExitText:          "Exit",
		CreditsLines: []string{
			"Made by the Dizzy Ducklings team",
			"Built with Ebitengine, donburi, resolv and go-tiled",
			"Font: Go Regular",
		},
	}

	Debug = DebugConfig{
		SkipTitle:  false,
		StartLevel: 0,
	}
}

// Direction constants for sprite facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
