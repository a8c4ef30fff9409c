package scenes

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/knightfall/components"
	cfg "github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/automoto/knightfall/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// floorLevel is a campaign-sized level whose bottom row has floor tiles in
// the first n columns.
func floorLevel(n int) []byte {
	empty := strings.TrimSpace(strings.Repeat("0 ", cfg.World.Cols))
	floor := strings.TrimSpace(strings.Repeat("1 ", n) + strings.Repeat("0 ", cfg.World.Cols-n))
	rows := make([]string, 0, cfg.World.Rows)
	for i := 0; i < cfg.World.Rows-1; i++ {
		rows = append(rows, empty)
	}
	rows = append(rows, floor)
	return []byte(strings.Join(rows, "\n"))
}

func count(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestNewWorld_NoLevels(t *testing.T) {
	_, err := NewWorld(nil, nil, 1, components.SettingsData{})
	assert.Error(t, err)
}

func TestNewWorldScene_BundledCampaign(t *testing.T) {
	scene, err := NewWorldScene(WorldOptions{
		Levels: os.DirFS("../levels"),
		Files:  []string{"level1.dat", "level2.dat"},
		Seed:   7,
	})
	require.NoError(t, err)
	defer scene.Close()

	w := scene.ECS().World
	assert.Equal(t, 1, count(w, tags.Player))
	assert.NotZero(t, count(w, tags.Platform))
	assert.NotZero(t, count(w, tags.Enemy))

	levelEntry, ok := components.Level.First(w)
	require.True(t, ok)
	level := components.Level.Get(levelEntry)
	assert.Equal(t, 0, level.Index)
	assert.Len(t, level.Grids, 2)
}

func TestNewWorldScene_MissingLevel(t *testing.T) {
	_, err := NewWorldScene(WorldOptions{
		Levels: fstest.MapFS{},
		Files:  []string{"nope.dat"},
	})
	assert.Error(t, err)
}

func TestWorldScene_ReloadsWatchedLevel(t *testing.T) {
	files := fstest.MapFS{
		"one.dat": {Data: floorLevel(10)},
		"two.dat": {Data: floorLevel(10)},
	}
	watcher := &leveldata.Watcher{Events: make(chan string, 4)}
	scene, err := NewWorldScene(WorldOptions{
		Levels:  files,
		Files:   []string{"one.dat", "two.dat"},
		Watcher: watcher,
	})
	require.NoError(t, err)
	w := scene.ECS().World
	require.Equal(t, 10, count(w, tags.Platform))

	files["one.dat"] = &fstest.MapFile{Data: floorLevel(25)}
	watcher.Events <- "/somewhere/levels/one.dat"
	watcher.Events <- "/somewhere/levels/one.dat"
	watcher.Events <- "/somewhere/levels/unrelated.dat"
	scene.reloadChangedLevels()

	assert.Equal(t, 25, count(w, tags.Platform))
	levelEntry, _ := components.Level.First(w)
	assert.Equal(t, 2, components.Level.Get(levelEntry).Loads, "duplicate events reload once")

	// A bad edit keeps the running level.
	files["one.dat"] = &fstest.MapFile{Data: []byte("1 1\n")}
	watcher.Events <- "one.dat"
	scene.reloadChangedLevels()
	assert.Equal(t, 25, count(w, tags.Platform))
}

func TestWorldScene_ConsumesWatcherErrors(t *testing.T) {
	watcher := &leveldata.Watcher{
		Events: make(chan string, 1),
		Errors: make(chan error, 1),
	}
	scene, err := NewWorldScene(WorldOptions{
		Levels:  fstest.MapFS{"one.dat": {Data: floorLevel(10)}},
		Files:   []string{"one.dat"},
		Watcher: watcher,
	})
	require.NoError(t, err)

	watcher.Errors <- errors.New("watch queue overflow")
	scene.reloadChangedLevels()
	assert.Zero(t, len(watcher.Errors), "the error slot is free for the next report")

	watcher.Errors <- errors.New("watch queue overflow")
	watcher.Events <- "one.dat"
	scene.reloadChangedLevels()
	assert.Zero(t, len(watcher.Errors))
	levelEntry, _ := components.Level.First(scene.ECS().World)
	assert.Equal(t, 2, components.Level.Get(levelEntry).Loads, "reloads continue after an error")
}
