package systems

import (
	"encoding/json"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the front-end preferences stored on disk. Game
// progress is never saved.
type SavedSettings struct {
	Fullscreen   bool `json:"fullscreen"`
	ShowHitboxes bool `json:"showHitboxes"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "knightfall",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when persistence
// is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

// SaveCurrentSettings saves the toggles of the running session.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Fullscreen:   s.Fullscreen,
		ShowHitboxes: s.ShowHitboxes,
	}
	if err := SaveSettings(saved); err != nil {
		logger.Warn("could not save settings", zap.Error(err))
	}
}

// ApplySavedSettings copies saved preferences onto the session toggles and
// the window.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Fullscreen = saved.Fullscreen
	s.ShowHitboxes = s.ShowHitboxes || saved.ShowHitboxes
	ebiten.SetFullscreen(saved.Fullscreen)
}
