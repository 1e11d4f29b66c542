package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the persisted player settings
type SettingsData struct {
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
