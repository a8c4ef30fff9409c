package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// AppConfig holds front-end settings read from knightfall.yaml. Gameplay
// tables are not part of it.
type AppConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Levels  LevelsConfig  `yaml:"levels"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
}

type WindowConfig struct {
	Scale      float64 `yaml:"scale"`
	Fullscreen bool    `yaml:"fullscreen"`
	TPS        int     `yaml:"tps"`
}

// LevelsConfig lists the campaign in play order. Files ending in .tmx are
// read with the Tiled loader, anything else as a plain-text grid.
type LevelsConfig struct {
	Dir   string   `yaml:"dir"`
	Files []string `yaml:"files"`
	Watch bool     `yaml:"watch"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

type DebugConfig struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
}

// App is the loaded front-end configuration. main replaces it after Load.
var App = DefaultApp()

// DefaultApp returns an AppConfig with the stock campaign.
func DefaultApp() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Scale: 1,
			TPS:   60,
		},
		Levels: LevelsConfig{
			Dir:   "levels",
			Files: []string{"level1.dat", "level2.dat"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration with priority: defaults < file < flags.
func Load() (*AppConfig, error) {
	cfg := DefaultApp()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c *AppConfig) Validate() error {
	if len(c.Levels.Files) == 0 {
		return fmt.Errorf("levels.files: at least one level is required")
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale: must be positive, got %v", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps: must be positive, got %d", c.Window.TPS)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./knightfall.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Knightfall")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Knightfall")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "knightfall")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "knightfall")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *AppConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
