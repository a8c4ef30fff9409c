package leveldata

// CellsWithCode returns every cell holding code, row by row.
func (g *Grid) CellsWithCode(codes ...int) []Cell {
	var cells []Cell
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			v := g.Cells[r][c]
			for _, code := range codes {
				if v == code {
					cells = append(cells, Cell{Row: r, Col: c, Code: v})
					break
				}
			}
		}
	}
	return cells
}

// EnemyRuns scans each row for runs of the same enemy code and finds the
// platform row each run stands on. isEnemy selects which codes are enemies.
func (g *Grid) EnemyRuns(isEnemy func(code int) bool) []EnemyRun {
	var runs []EnemyRun
	for r := 0; r < g.Rows; r++ {
		c := 0
		for c < g.Cols {
			code := g.Cells[r][c]
			if !isEnemy(code) {
				c++
				continue
			}
			start := c
			for c < g.Cols && g.Cells[r][c] == code {
				c++
			}
			run := EnemyRun{Code: code, Row: r, StartCol: start, EndCol: c - 1}
			run.PlatformRow = g.platformBelow(r, run.StartCol, run.EndCol)
			runs = append(runs, run)
		}
	}
	return runs
}

func (g *Grid) platformBelow(row, startCol, endCol int) int {
	for r := row + 1; r < g.Rows; r++ {
		for c := startCol; c <= endCol; c++ {
			if IsPlatform(g.Cells[r][c]) {
				return r
			}
		}
	}
	return -1
}
