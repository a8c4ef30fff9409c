package leveldata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLevelFile(t *testing.T) {
	assert.True(t, IsLevelFile("levels/level1.dat"))
	assert.True(t, IsLevelFile("Level2.TMX"))
	assert.False(t, IsLevelFile("level1.dat.swp"))
	assert.False(t, IsLevelFile("notes.txt"))
}

func TestWatcher_ReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	level := filepath.Join(dir, "level1.dat")
	require.NoError(t, os.WriteFile(level, []byte("0 0\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, filepath.Clean(level), got)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the level file")
	}
}

func TestWatcher_DrainDeduplicates(t *testing.T) {
	w := &Watcher{Events: make(chan string, 8)}
	assert.Empty(t, w.Drain())

	w.Events <- "a.dat"
	w.Events <- "b.dat"
	w.Events <- "a.dat"
	assert.Equal(t, []string{"a.dat", "b.dat"}, w.Drain())
	assert.Empty(t, w.Drain())
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcher_ReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	level := filepath.Join(dir, "level1.dat")
	f, err := os.Create(level)
	require.NoError(t, err)
	_, err = f.WriteString("0 0\n")
	require.NoError(t, err)

	time.Sleep(watchDebounce / 3)
	assert.Empty(t, w.Drain(), "a half-written file is not reported")

	_, err = f.WriteString("1 1\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case got := <-w.Events:
		assert.Equal(t, filepath.Clean(level), got)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("the finished write was never reported")
	}

	_, err = LoadFile(os.DirFS(dir), "level1.dat", 2, 2)
	assert.NoError(t, err, "the reported file is complete")

	time.Sleep(3 * watchDebounce)
	assert.Empty(t, w.Drain(), "one burst of writes is one event")
}

func TestWatcher_DrainErrors(t *testing.T) {
	w := &Watcher{Errors: make(chan error, 1)}
	assert.Empty(t, w.DrainErrors())

	w.Errors <- os.ErrPermission
	assert.Equal(t, []error{os.ErrPermission}, w.DrainErrors())
	assert.Empty(t, w.DrainErrors())
}
