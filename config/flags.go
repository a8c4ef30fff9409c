package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging and hitbox overlay")
	flagLevels   = flag.String("levels", "", "Directory containing level files")
	flagWatch    = flag.Bool("watch", false, "Reload level files when they change on disk")
	flagScale    = flag.Float64("scale", 0, "Window scale factor")
	flagLogFile  = flag.String("log-file", "", "Also write JSON logs to this file")
	flagFullscrn = flag.Bool("fullscreen", false, "Start in fullscreen mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *AppConfig) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowHitboxes = true
	}
	if *flagLevels != "" {
		cfg.Levels.Dir = *flagLevels
	}
	if *flagWatch {
		cfg.Levels.Watch = true
	}
	if *flagScale > 0 {
		cfg.Window.Scale = *flagScale
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagFullscrn {
		cfg.Window.Fullscreen = true
	}
}
