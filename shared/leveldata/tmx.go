package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// GridLayer is the tile layer read from TMX levels.
const GridLayer = "grid"

// LoadTMX reads a Tiled map whose "grid" layer holds the level. A tile's
// local id plus one is its tile code, so a tileset laid out in code order
// paints levels directly.
func LoadTMX(fsys fs.FS, tmxPath string, rows, cols int) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Height != rows {
		return nil, fmt.Errorf("TMX %s: %w: got %d, want %d", tmxPath, ErrRowCount, levelMap.Height, rows)
	}
	if levelMap.Width != cols {
		return nil, fmt.Errorf("TMX %s: %w: got %d, want %d", tmxPath, ErrColumnCount, levelMap.Width, cols)
	}

	var tiles []*tiled.LayerTile
	for _, l := range levelMap.Layers {
		if l.Name == GridLayer {
			tiles = l.Tiles
			break
		}
	}
	if len(tiles) != rows*cols {
		return nil, fmt.Errorf("TMX %s: no %q layer", tmxPath, GridLayer)
	}

	g := &Grid{
		Name:  strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Rows:  rows,
		Cols:  cols,
		Cells: make([][]int, rows),
	}
	for y := 0; y < rows; y++ {
		g.Cells[y] = make([]int, cols)
		for x := 0; x < cols; x++ {
			tile := tiles[y*cols+x]
			if tile.IsNil() {
				continue
			}
			g.Cells[y][x] = int(tile.ID) + 1
		}
	}
	return g, nil
}
