package systems

import (
	"strings"
	"testing"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// flatLevel is a 20x4 level with a floor on the bottom row and nothing else.
var flatLevel = []string{
	"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
	"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
	"0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
	"1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1",
}

func parseGrid(t *testing.T, rows []string) *leveldata.Grid {
	t.Helper()
	cols := len(strings.Fields(rows[0]))
	grid, err := leveldata.ParseGrid(strings.NewReader(strings.Join(rows, "\n")), len(rows), cols)
	require.NoError(t, err)
	return grid
}

// newTestWorld builds a headless world playing the given levels, starting on
// the first one.
func newTestWorld(t *testing.T, levels ...[]string) *ecs.ECS {
	t.Helper()
	grids := make([]*leveldata.Grid, len(levels))
	paths := make([]string, len(levels))
	for i, rows := range levels {
		grids[i] = parseGrid(t, rows)
	}

	e := ecs.NewECS(donburi.NewWorld())
	w := float64(cfg.World.Cols) * cfg.World.TileWidth
	h := float64(cfg.World.Rows) * cfg.World.TileHeight
	factory.CreateSpace(e, int(w), int(h), int(cfg.World.TileWidth), int(cfg.World.TileHeight))
	factory.CreateCamera(e)
	factory.CreateSession(e, 1, components.SettingsData{})
	factory.CreateLevel(e, grids, paths)
	require.NoError(t, factory.InitializeLevel(e, 0))
	return e
}

// tick runs the simulation systems in scene order, without polling devices.
func tick(e *ecs.ECS) {
	UpdateSession(e)
	UpdateCommands(e)
	for _, system := range []ecs.System{
		UpdatePlayer,
		UpdateEnemies,
		UpdateBullets,
		UpdatePickups,
		UpdatePlayerAttack,
		UpdateEnemyAttacks,
		UpdateRemovals,
	} {
		WithGameplayChecks(system)(e)
	}
	UpdateTransition(e)
	UpdateCamera(e)
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	player, ok := playerEntry(e)
	require.True(t, ok, "player should exist")
	return player
}

// placeAt moves an entity's body to x, y.
func placeAt(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry).Object
	obj.X, obj.Y = x, y
	obj.Update()
}

func spawnEnemy(e *ecs.ECS, typeName string, x, y float64) *donburi.Entry {
	t := cfg.Enemy.Types[typeName]
	return factory.CreateEnemy(e, t, x, y, x-200, x+200)
}

func countTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func stateOf(entry *donburi.Entry) cfg.StateID {
	return components.State.Get(entry).CurrentState
}

func animOf(entry *donburi.Entry) (frame, timer int) {
	anim := components.Animation.Get(entry).Anim
	return anim.Frame(), anim.Timer()
}

// settle ticks until the player has landed on the floor.
func settle(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	player := mustPlayer(t, e)
	for i := 0; i < 200; i++ {
		tick(e)
		if !components.Player.Get(player).Airborne && stateOf(player) == cfg.Idle {
			return player
		}
	}
	t.Fatal("player never landed")
	return nil
}
