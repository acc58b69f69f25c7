package desktop

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the desktop preferences kept between runs.
type Settings struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // 0.0 - 1.0
	Scale  float64 `yaml:"scale"`  // Window size multiplier
}

// Storage location inside the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "desktop"
)

// SettingsStore persists Settings with gdata. A nil manager runs in degraded
// mode: loads return the defaults and saves are dropped.
type SettingsStore struct {
	m *gdata.Manager
}

// OpenSettings opens the per-user data store for the application.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &SettingsStore{}, fmt.Errorf("desktop: open settings store: %w", err)
	}
	return &SettingsStore{m: m}, nil
}

// NewSettingsStore wraps an existing manager, which may be nil.
func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	return &SettingsStore{m: m}
}

// Persistent reports whether settings survive a restart.
func (s *SettingsStore) Persistent() bool {
	return s != nil && s.m != nil
}

// Load returns the saved settings, or def when nothing is saved. On a decode
// error def is returned along with the error.
func (s *SettingsStore) Load(def Settings) (Settings, error) {
	if !s.Persistent() || !s.m.ObjectPropExists(settingsObject, settingsProperty) {
		return def, nil
	}

	data, err := s.m.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return def, fmt.Errorf("desktop: load settings: %w", err)
	}

	// Start from the defaults so fields missing in older files keep a value
	loaded := def
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return def, fmt.Errorf("desktop: decode settings: %w", err)
	}
	return loaded, nil
}

// Save writes the settings.
func (s *SettingsStore) Save(st Settings) error {
	if !s.Persistent() {
		return nil
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("desktop: encode settings: %w", err)
	}
	if err := s.m.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("desktop: save settings: %w", err)
	}
	return nil
}
