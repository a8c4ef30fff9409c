package components

import (
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grids  []*leveldata.Grid
	Paths  []string
	Index  int
	Width  float64 // current level width in pixels
	Height float64
	// Loads counts level initializations, including reloads
	Loads int
}

// Current returns the grid of the level being played.
func (l *LevelData) Current() *leveldata.Grid {
	if l.Index < 0 || l.Index >= len(l.Grids) {
		return nil
	}
	return l.Grids[l.Index]
}

// Next returns the index the door of the current level leads to. The last
// level leads back to itself.
func (l *LevelData) Next() int {
	if l.Index+1 < len(l.Grids) {
		return l.Index + 1
	}
	return l.Index
}

var Level = donburi.NewComponentType[LevelData]()
