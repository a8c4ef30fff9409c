package leveldata

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	input := "0 1 2\n3 4 5\n\n"
	g, err := ParseGrid(strings.NewReader(input), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, g.Cells)
	assert.Equal(t, 5, g.At(1, 2))
	assert.Equal(t, TileEmpty, g.At(5, 0), "out of range reads as empty")
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"too few rows", "0 0 0\n", ErrRowCount},
		{"too many rows", "0 0 0\n0 0 0\n0 0 0\n", ErrRowCount},
		{"short row", "0 0 0\n0 0\n", ErrColumnCount},
		{"long row", "0 0 0 0\n0 0 0\n", ErrColumnCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader(tt.input), 2, 3)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseGrid(strings.NewReader("0 x 0\n0 0 0\n"), 2, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 1 column 2")
	})
}

func TestLoadFile_PlainAndTMXAgree(t *testing.T) {
	fsys := os.DirFS("testdata")

	plain, err := LoadFile(fsys, "small.dat", 4, 6)
	require.NoError(t, err)
	assert.Equal(t, "small", plain.Name)

	tmx, err := LoadFile(fsys, "small.tmx", 4, 6)
	require.NoError(t, err)
	assert.Equal(t, plain.Cells, tmx.Cells)
}

func TestLoadTMX_SizeMismatch(t *testing.T) {
	_, err := LoadTMX(os.DirFS("testdata"), "small.tmx", 11, 6)
	assert.ErrorIs(t, err, ErrRowCount)

	_, err = LoadTMX(os.DirFS("testdata"), "small.tmx", 4, 160)
	assert.ErrorIs(t, err, ErrColumnCount)
}

func TestLoadAll_StopsAtFirstFailure(t *testing.T) {
	_, err := LoadAll(os.DirFS("testdata"), []string{"small.dat", "missing.dat"}, 4, 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.dat")
}

func TestGrid_EnemyRuns(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(`
0 2 2 4 4 4 8 0
0 0 0 0 0 0 0 5
0 0 0 1 0 0 0 0
3 0 0 0 0 0 0 0
`), 4, 8)
	require.NoError(t, err)

	isEnemy := func(code int) bool {
		return code == TileGrunt || code == TilePatroller || code == TileOracle || code == TileBoss
	}
	runs := g.EnemyRuns(isEnemy)
	require.Len(t, runs, 4)

	assert.Equal(t, EnemyRun{Code: TileGrunt, Row: 0, StartCol: 1, EndCol: 2, PlatformRow: -1}, runs[0],
		"columns 1-2 have no platform below")
	assert.Equal(t, EnemyRun{Code: TilePatroller, Row: 0, StartCol: 3, EndCol: 5, PlatformRow: 2}, runs[1])
	assert.Equal(t, EnemyRun{Code: TileBoss, Row: 0, StartCol: 6, EndCol: 6, PlatformRow: -1}, runs[2])
	assert.Equal(t, EnemyRun{Code: TileOracle, Row: 1, StartCol: 7, EndCol: 7, PlatformRow: -1}, runs[3])
}

func TestGrid_CellsWithCode(t *testing.T) {
	g, err := LoadFile(os.DirFS("testdata"), "small.dat", 4, 6)
	require.NoError(t, err)

	assert.Equal(t, []Cell{{Row: 1, Col: 5, Code: TileItem}, {Row: 3, Col: 4, Code: TileDoor}},
		g.CellsWithCode(TileDoor, TileItem))
	assert.Len(t, g.CellsWithCode(TilePlatform, TilePlatformAlt), 5)
}
