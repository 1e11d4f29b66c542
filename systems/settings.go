package systems

import (
	"github.com/automoto/dizzy-ducklings/archetypes"
	"github.com/automoto/dizzy-ducklings/components"
	cfg "github.com/automoto/dizzy-ducklings/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateSettings returns the settings singleton, seeding it from the
// saved settings or the defaults.
func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	if entry, ok := components.Settings.First(w); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(w)
	settings := components.Settings.Get(entry)
	settings.Fullscreen = cfg.Settings.Fullscreen
	if saved, _ := LoadSettings(); saved != nil {
		settings.Fullscreen = saved.Fullscreen
	}
	return settings
}

// ToggleFullscreen flips the fullscreen setting, saves it and returns the new
// value. The caller applies it to the window.
func ToggleFullscreen(w donburi.World) bool {
	settings := GetOrCreateSettings(w)
	settings.Fullscreen = !settings.Fullscreen
	// saveJSON logs failures
	_ = SaveSettings(&SavedSettings{Fullscreen: settings.Fullscreen})
	return settings.Fullscreen
}
