package systems

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestSettingsRoundTrip(t *testing.T) {
	withStore(t, newMemStore())

	if saved, err := LoadSettings(); saved != nil || err != nil {
		t.Fatalf("LoadSettings on empty store = (%v, %v), want (nil, nil)", saved, err)
	}
	if err := SaveSettings(&SavedSettings{Fullscreen: true}); err != nil {
		t.Fatal(err)
	}
	saved, err := LoadSettings()
	if err != nil || saved == nil || !saved.Fullscreen {
		t.Errorf("LoadSettings = (%+v, %v), want fullscreen on", saved, err)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	mem := newMemStore()
	mem.items[settingsKey] = []byte("{not json")
	withStore(t, mem)

	if _, err := LoadSettings(); err == nil {
		t.Error("LoadSettings accepted malformed data")
	}
}

func TestPersistenceDisabled(t *testing.T) {
	withStore(t, nil)

	if err := SaveBestTime(10); err != nil {
		t.Errorf("SaveBestTime = %v, want nil without a store", err)
	}
	if _, ok := LoadBestTime(); ok {
		t.Error("LoadBestTime found a record without a store")
	}
}

func TestToggleFullscreenPersists(t *testing.T) {
	withStore(t, newMemStore())
	w := donburi.NewWorld()

	if GetOrCreateSettings(w).Fullscreen {
		t.Fatal("fullscreen should default to off")
	}
	if !ToggleFullscreen(w) {
		t.Fatal("ToggleFullscreen returned off")
	}

	saved, _ := LoadSettings()
	if saved == nil || !saved.Fullscreen {
		t.Errorf("saved settings = %+v, want fullscreen on", saved)
	}
	if !GetOrCreateSettings(donburi.NewWorld()).Fullscreen {
		t.Error("a new world ignored the saved setting")
	}
}
