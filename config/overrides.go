package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TuningFile is the file name searched for in the user and working directories.
const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("config: invalid tuning")

// tuning is the subset of configuration a YAML file may override. Keys that
// are absent keep their current values.
type tuning struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Duckling    DucklingConfig    `yaml:"duckling"`
	Progression ProgressionConfig `yaml:"progression"`
	Timestep    TimestepConfig    `yaml:"timestep"`
	Camera      CameraConfig      `yaml:"camera"`
}

// LoadOverrides applies a tuning file on top of the compiled-in defaults and
// returns the path it used, or "" when no file was found.
// Search order: customPath -> ~/.dizzy-ducklings/tuning.yaml -> ./tuning.yaml
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := ApplyOverrides(data); err != nil {
			return "", fmt.Errorf("failed to apply tuning %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, p := range []string{userConfigPath(TuningFile), TuningFile} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := ApplyOverrides(data); err != nil {
			return "", fmt.Errorf("failed to apply tuning %s: %w", p, err)
		}
		return p, nil
	}
	return "", nil
}

// ApplyOverrides parses YAML tuning data and, if it is valid, replaces the
// global configuration values it names. Invalid data leaves them untouched.
func ApplyOverrides(data []byte) error {
	cfg := tuning{
		Physics:     Physics,
		Player:      Player,
		Duckling:    Duckling,
		Progression: Progression,
		Timestep:    Timestep,
		Camera:      Camera,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	Physics = cfg.Physics
	Player = cfg.Player
	Duckling = cfg.Duckling
	Progression = cfg.Progression
	Timestep = cfg.Timestep
	Camera = cfg.Camera
	return nil
}

func (c tuning) validate() error {
	switch {
	case c.Timestep.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidTuning)
	case c.Timestep.MaxFrame <= 0:
		return fmt.Errorf("%w: max_frame must be positive", ErrInvalidTuning)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal_velocity must be positive", ErrInvalidTuning)
	case c.Physics.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidTuning)
	case c.Progression.FadeSeconds < 0:
		return fmt.Errorf("%w: fade_seconds must not be negative", ErrInvalidTuning)
	case c.Progression.MinTicksToEnd < 0:
		return fmt.Errorf("%w: min_ticks_to_end must not be negative", ErrInvalidTuning)
	case c.Progression.MapLoadTimeout < 0:
		return fmt.Errorf("%w: map_load_timeout must not be negative", ErrInvalidTuning)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dizzy-ducklings", filename)
}
