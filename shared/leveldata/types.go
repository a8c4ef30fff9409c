// Package leveldata parses level grids and scans them for spawns.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "errors"

// Tile codes used in level grids.
const (
	TileEmpty       = 0
	TilePlatform    = 1
	TileGrunt       = 2
	TilePlatformAlt = 3
	TilePatroller   = 4
	TileOracle      = 5
	TileDoor        = 6
	TileItem        = 7
	TileBoss        = 8
)

var (
	ErrRowCount    = errors.New("wrong number of rows")
	ErrColumnCount = errors.New("wrong number of columns")
)

// IsPlatform reports whether code is one of the solid platform tiles.
func IsPlatform(code int) bool {
	return code == TilePlatform || code == TilePlatformAlt
}

// Grid is a level as rows of tile codes.
type Grid struct {
	Name  string
	Rows  int
	Cols  int
	Cells [][]int
}

// At returns the code at row, col or TileEmpty when out of range.
func (g *Grid) At(row, col int) int {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return TileEmpty
	}
	return g.Cells[row][col]
}

// Cell is a single grid position.
type Cell struct {
	Row, Col int
	Code     int
}

// EnemyRun is a horizontal run of identical enemy codes on one row. The run
// spans columns [StartCol, EndCol]. PlatformRow is the first row below that
// has a platform tile within the run's columns, or -1 when there is none.
type EnemyRun struct {
	Code        int
	Row         int
	StartCol    int
	EndCol      int
	PlatformRow int
}
