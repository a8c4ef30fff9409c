package scenes

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/systems"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldOptions describe the campaign a WorldScene plays.
type WorldOptions struct {
	Levels   fs.FS    // directory holding the level files
	Files    []string // level files in play order, relative to Levels
	Seed     uint64
	Settings components.SettingsData
	// Watcher, when set, reports level files edited on disk.
	Watcher *leveldata.Watcher
}

type WorldScene struct {
	ecs     *ecs.ECS
	levels  fs.FS
	watcher *leveldata.Watcher
}

// NewWorldScene loads the campaign and builds its first level.
func NewWorldScene(opts WorldOptions) (*WorldScene, error) {
	grids, err := factory.LoadLevels(opts.Levels, opts.Files)
	if err != nil {
		return nil, err
	}
	e, err := NewWorld(grids, opts.Files, opts.Seed, opts.Settings)
	if err != nil {
		return nil, err
	}
	return &WorldScene{ecs: e, levels: opts.Levels, watcher: opts.Watcher}, nil
}

// NewWorld assembles the ECS, registers the systems in tick order and
// initializes level 0.
func NewWorld(grids []*leveldata.Grid, paths []string, seed uint64, settings components.SettingsData) (*ecs.ECS, error) {
	if len(grids) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.PollInput)
	e.AddSystem(systems.UpdateCommands)

	// Simulation steps, halted while fading or after the run ends
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBullets))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerAttack))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyAttacks))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRemovals))

	e.AddSystem(systems.UpdateTransition)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHitboxes)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawTransition)

	w := float64(cfg.World.Cols) * cfg.World.TileWidth
	h := float64(cfg.World.Rows) * cfg.World.TileHeight
	factory.CreateSpace(e, int(w), int(h), int(cfg.World.TileWidth), int(cfg.World.TileHeight))
	factory.CreateCamera(e)
	factory.CreateSession(e, seed, settings)
	factory.CreateLevel(e, grids, paths)

	if err := factory.InitializeLevel(e, 0); err != nil {
		return nil, err
	}
	return e, nil
}

// ECS exposes the scene's world, mainly for tests.
func (ws *WorldScene) ECS() *ecs.ECS {
	return ws.ecs
}

func (ws *WorldScene) Update() error {
	ws.reloadChangedLevels()
	ws.ecs.Update()
	if systems.Finished(ws.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ws.ecs.Draw(screen)
}

// reloadChangedLevels applies level edits reported by the watcher between
// ticks, so a reload never happens in the middle of a step.
func (ws *WorldScene) reloadChangedLevels() {
	if ws.watcher == nil {
		return
	}
	for _, err := range ws.watcher.DrainErrors() {
		logger.Warn("level watcher error", zap.Error(err))
	}
	levelEntry, ok := components.Level.First(ws.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, path := range ws.watcher.Drain() {
		index, ok := factory.LevelIndexForPath(level, path)
		if !ok {
			continue
		}
		if err := factory.ReloadLevel(ws.ecs, ws.levels, index); err != nil {
			logger.Warn("level reload failed, keeping previous version",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		logger.Info("level reloaded", zap.String("path", path))
	}
}

// Close stops the level watcher, if any.
func (ws *WorldScene) Close() error {
	if ws.watcher == nil {
		return nil
	}
	return ws.watcher.Close()
}
