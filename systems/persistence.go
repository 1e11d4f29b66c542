package systems

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// Store is the key/value save backend. *gdata.Manager implements it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

type savedRecords struct {
	BestSeconds float64 `json:"bestSeconds"`
}

const (
	settingsKey = "settings"
	recordsKey  = "records"
)

var store Store

// InitPersistence opens the gdata store for settings and records.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open gdata store: %w", err)
	}
	store = m
	return nil
}

// UseStore replaces the save backend. Nil disables persistence.
func UseStore(s Store) {
	store = s
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved
// or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadJSON(settingsKey, &settings)
	if !ok || err != nil {
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	return saveJSON(settingsKey, s)
}

// LoadBestTime returns the best whole-game completion time, if one exists.
func LoadBestTime() (float64, bool) {
	var records savedRecords
	ok, err := loadJSON(recordsKey, &records)
	if !ok || err != nil || records.BestSeconds <= 0 {
		return 0, false
	}
	return records.BestSeconds, true
}

func SaveBestTime(seconds float64) error {
	return saveJSON(recordsKey, savedRecords{BestSeconds: seconds})
}

func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		log.Warn("could not load saved data", "key", key, "error", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("could not parse saved data", "key", key, "error", err)
		return false, err
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("could not serialize data", "key", key, "error", err)
		return err
	}
	if err := store.SaveItem(key, data); err != nil {
		log.Warn("could not save data", "key", key, "error", err)
		return err
	}
	return nil
}
