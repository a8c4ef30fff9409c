package main

import (
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/knightfall/assets"
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/fonts"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/automoto/knightfall/scenes"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	config.ParseFlags()
	app, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.App = app

	if err := logger.Init(app.Logging.Level, app.Logging.LogFile); err != nil {
		log.Printf("Warning: Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("font setup failed", zap.Error(err))
	}
	assets.Init(os.DirFS("images"))

	settings := components.SettingsData{
		ShowHitboxes: app.Debug.ShowHitboxes,
		Fullscreen:   app.Window.Fullscreen,
	}
	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(&settings, saved)
	}

	var watcher *leveldata.Watcher
	if app.Levels.Watch {
		watcher, err = leveldata.NewWatcher(app.Levels.Dir)
		if err != nil {
			logger.Warn("level watching disabled", zap.Error(err))
			watcher = nil
		}
	}

	scene, err := scenes.NewWorldScene(scenes.WorldOptions{
		Levels:   os.DirFS(app.Levels.Dir),
		Files:    app.Levels.Files,
		Seed:     uint64(time.Now().UnixNano()),
		Settings: settings,
		Watcher:  watcher,
	})
	if err != nil {
		logger.Fatal("could not start", zap.Error(err))
	}
	defer scene.Close()

	ebiten.SetWindowTitle("Knightfall")
	ebiten.SetWindowSize(int(float64(config.C.Width)*app.Window.Scale), int(float64(config.C.Height)*app.Window.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(app.Window.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Error("game exited with error", zap.Error(err))
	}
}
