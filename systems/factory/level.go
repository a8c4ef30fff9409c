package factory

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/internal/logger"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// LoadLevels reads the campaign from fsys in play order.
func LoadLevels(fsys fs.FS, names []string) ([]*leveldata.Grid, error) {
	return leveldata.LoadAll(fsys, names, cfg.World.Rows, cfg.World.Cols)
}

// CreateLevel stores the campaign. Nothing is built until InitializeLevel.
func CreateLevel(ecs *ecs.ECS, grids []*leveldata.Grid, paths []string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Grids: grids,
		Paths: paths,
	})
	return level
}

// InitializeLevel tears down the current level's entities and builds level
// index from its grid. The player is kept and moved to the spawn point with
// full health and lives.
func InitializeLevel(e *ecs.ECS, index int) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return fmt.Errorf("no level data")
	}
	level := components.Level.Get(levelEntry)
	if index < 0 || index >= len(level.Grids) {
		return fmt.Errorf("level index %d out of range [0, %d)", index, len(level.Grids))
	}
	clearLevel(e)

	tw, th := cfg.World.TileWidth, cfg.World.TileHeight
	level.Index = index
	grid := level.Current()
	level.Width = float64(grid.Cols) * tw
	level.Height = float64(grid.Rows) * th

	for _, cell := range grid.CellsWithCode(leveldata.TilePlatform, leveldata.TilePlatformAlt) {
		CreatePlatform(e, float64(cell.Col)*tw, float64(cell.Row)*th, cell.Code)
	}
	for _, cell := range grid.CellsWithCode(leveldata.TileItem) {
		CreateItem(e, float64(cell.Col)*tw, float64(cell.Row)*th)
	}
	for _, cell := range grid.CellsWithCode(leveldata.TileDoor) {
		CreateDoor(e, float64(cell.Col)*tw, float64(cell.Row)*th, level.Next())
	}
	enemies := spawnEnemies(e, grid)

	x := float64(cfg.World.SpawnCol) * tw
	y := float64(cfg.World.SpawnRow)*th + cfg.World.SpawnOffsetY
	if player, ok := tags.Player.First(e.World); ok {
		PlacePlayer(player, x, y)
	} else {
		CreatePlayer(e, x, y)
	}

	level.Loads++
	logger.Info("level loaded",
		zap.Int("index", index),
		zap.String("name", grid.Name),
		zap.Int("enemies", enemies),
		zap.Int("loads", level.Loads),
	)
	return nil
}

// spawnEnemies creates one enemy per horizontal run of enemy tiles, standing
// on the first platform row below the run and patrolling its width.
func spawnEnemies(e *ecs.ECS, grid *leveldata.Grid) int {
	tw, th := cfg.World.TileWidth, cfg.World.TileHeight
	isEnemy := func(code int) bool {
		_, ok := cfg.Enemy.TileCodes[code]
		return ok
	}

	n := 0
	for _, run := range grid.EnemyRuns(isEnemy) {
		t, _ := cfg.TypeForTile(run.Code)
		if run.PlatformRow < 0 {
			logger.Warn("enemy run has no platform below, skipping",
				zap.String("type", t.Name),
				zap.Int("row", run.Row),
				zap.Int("col", run.StartCol),
			)
			continue
		}

		x := float64(run.StartCol)*tw + t.SpawnOffsetX
		minX := x
		maxX := float64(run.EndCol+1)*tw + t.SpawnOffsetX
		y := float64(run.PlatformRow)*th - cfg.Enemy.FootOffset
		if isTall(run.Code) {
			y -= cfg.Enemy.TallOffset
		}
		y += t.SpawnOffsetY

		CreateEnemy(e, t, x, y, minX, maxX)
		n++
	}
	return n
}

func isTall(code int) bool {
	return code == leveldata.TilePatroller || code == leveldata.TileBoss
}

// clearLevel removes every entity that belongs to a level, leaving the
// player, camera, session and level data in place.
func clearLevel(e *ecs.ECS) {
	var doomed []*donburi.Entry
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Platform, tags.Enemy, tags.Bullet, tags.Item, tags.Door} {
		tag.Each(e.World, func(entry *donburi.Entry) {
			doomed = append(doomed, entry)
		})
	}
	for _, entry := range doomed {
		if obj := components.Object.Get(entry).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
		e.World.Remove(entry.Entity())
	}
}

// LevelIndexForPath finds the campaign entry a changed file belongs to.
func LevelIndexForPath(level *components.LevelData, path string) (int, bool) {
	base := filepath.Base(path)
	for i, p := range level.Paths {
		if filepath.Base(p) == base {
			return i, true
		}
	}
	return -1, false
}

// ReloadLevel re-reads one campaign file. When it is the level in play the
// level is rebuilt in place.
func ReloadLevel(e *ecs.ECS, fsys fs.FS, index int) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return fmt.Errorf("no level data")
	}
	level := components.Level.Get(levelEntry)
	if index < 0 || index >= len(level.Paths) {
		return fmt.Errorf("level index %d out of range", index)
	}

	grid, err := leveldata.LoadFile(fsys, level.Paths[index], cfg.World.Rows, cfg.World.Cols)
	if err != nil {
		return err
	}
	level.Grids[index] = grid
	if index != level.Index {
		return nil
	}
	return InitializeLevel(e, index)
}
