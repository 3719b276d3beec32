package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Settings survive between runs. BestClearSeconds is zero until the player
// has cleared a map at least once.
type Settings struct {
	CameraDistance   float64 `yaml:"camera_distance"`
	ShowDebug        bool    `yaml:"show_debug"`
	BestClearSeconds int64   `yaml:"best_clear_seconds"`
}

// SettingsStore keeps Settings in memory and mirrors them to gdata. A nil
// manager degrades to memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
	defaults Settings
}

func NewSettingsStore(manager *gdata.Manager, defaults Settings) *SettingsStore {
	st := &SettingsStore{manager: manager, settings: defaults, defaults: defaults}
	if err := st.Load(); err != nil {
		log.Printf("[SettingsStore] Warning: %v (using defaults)", err)
	}
	return st
}

// Load replaces the in-memory settings with the persisted copy, if any.
func (st *SettingsStore) Load() error {
	st.settings = st.defaults
	if st.manager == nil || !st.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := st.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	if loaded.CameraDistance <= 0 {
		loaded.CameraDistance = st.defaults.CameraDistance
	}
	st.settings = loaded
	return nil
}

// Save writes the settings through gdata. It is a no-op without a manager.
func (st *SettingsStore) Save() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := st.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (st *SettingsStore) Get() Settings {
	return st.settings
}

func (st *SettingsStore) SetCameraDistance(d float64) {
	st.settings.CameraDistance = d
}

func (st *SettingsStore) SetShowDebug(show bool) {
	st.settings.ShowDebug = show
}

// RecordClear stores seconds as the best clear time when it beats the
// previous one and reports whether it did. Zero means no clear yet, so
// seconds must be positive.
func (st *SettingsStore) RecordClear(seconds int64) bool {
	if seconds <= 0 {
		return false
	}
	if st.settings.BestClearSeconds != 0 && seconds >= st.settings.BestClearSeconds {
		return false
	}
	st.settings.BestClearSeconds = seconds
	return true
}
