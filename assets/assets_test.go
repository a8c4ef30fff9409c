package assets

import (
	"image"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

// countingFS records how often files are opened.
type countingFS struct {
	fs.FS
	opens int
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens++
	return c.FS.Open(name)
}

func TestSheetLoader_MissingSheetIsRememberedOnce(t *testing.T) {
	fsys := &countingFS{FS: fstest.MapFS{}}
	l := NewSheetLoader(fsys)

	assert.Nil(t, l.Sheet("absent"))
	assert.True(t, l.missing["absent"])
	assert.Equal(t, 1, fsys.opens)

	assert.Nil(t, l.Sheet("absent"))
	assert.Equal(t, 1, fsys.opens, "a failed sheet is not retried")

	assert.Nil(t, l.Frame("absent", image.Rect(0, 0, 8, 8)))
	assert.Equal(t, 1, fsys.opens)
	assert.Empty(t, l.frameCache)
}

func TestSheetLoader_UndecodableSheet(t *testing.T) {
	fsys := &countingFS{FS: fstest.MapFS{"knight.png": {Data: []byte("not a png")}}}
	l := NewSheetLoader(fsys)

	assert.Nil(t, l.Sheet("knight"))
	assert.Nil(t, l.Sheet("knight"))
	assert.Equal(t, 1, fsys.opens)
	assert.Empty(t, l.cache)
}

func TestSheetLoader_NoDirectory(t *testing.T) {
	l := NewSheetLoader(nil)
	assert.Nil(t, l.Sheet("knight"))
	assert.True(t, l.missing["knight"])
}

func TestGetFrame_DefaultLoaderHasNoSheets(t *testing.T) {
	Init(nil)
	assert.Nil(t, GetFrame("knight", image.Rectangle{}))
}
