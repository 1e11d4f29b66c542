package config

// SettingsConfig contains defaults for persisted player settings
type SettingsConfig struct {
	Fullscreen        bool
	FullscreenOnText  string
	FullscreenOffText string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Fullscreen:        false,
		FullscreenOnText:  "Fullscreen: ON",
		FullscreenOffText: "Fullscreen: OFF",
	}
}

// FullscreenLabel returns the title screen label for the fullscreen toggle.
func FullscreenLabel(enabled bool) string {
	if enabled {
		return Settings.FullscreenOnText
	}
	return Settings.FullscreenOffText
}
