package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/knightfall/internal/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// SheetLoader loads sprite sheets by name from a file system and caches them
// together with the frames cut out of them. A sheet that fails to load is
// reported once and then treated as absent.
type SheetLoader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
	missing    map[string]bool
}

type frameKey struct {
	sheet string
	src   image.Rectangle
}

func NewSheetLoader(fsys fs.FS) *SheetLoader {
	return &SheetLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
		missing:    make(map[string]bool),
	}
}

// Sheet returns the image stored as name.png, or nil when it cannot be loaded.
func (l *SheetLoader) Sheet(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}
	if l.missing[name] {
		return nil
	}

	img, err := l.load(name)
	if err != nil {
		l.missing[name] = true
		logger.Warn("sprite sheet unavailable, drawing placeholder",
			zap.String("sheet", name),
			zap.Error(err),
		)
		return nil
	}
	l.cache[name] = img
	return img
}

func (l *SheetLoader) load(name string) (*ebiten.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("no image directory configured")
	}
	data, err := fs.ReadFile(l.fsys, path.Clean(name)+".png")
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// Frame returns the src cell of a sheet, or the whole sheet when src is empty.
// Frames are cached so each cell is only sliced once.
func (l *SheetLoader) Frame(name string, src image.Rectangle) *ebiten.Image {
	sheet := l.Sheet(name)
	if sheet == nil {
		return nil
	}
	if src.Empty() {
		return sheet
	}

	key := frameKey{sheet: name, src: src}
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	frame := sheet.SubImage(src).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

var sheets = NewSheetLoader(nil)

// Init points the global loader at the directory holding the sprite sheets.
func Init(fsys fs.FS) {
	sheets = NewSheetLoader(fsys)
}

func GetFrame(name string, src image.Rectangle) *ebiten.Image {
	return sheets.Frame(name, src)
}
