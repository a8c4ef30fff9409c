package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// ParseGrid reads rows lines of cols whitespace-separated integers. Blank
// lines are ignored. Any other row or column count is an error wrapping
// ErrRowCount or ErrColumnCount.
func ParseGrid(r io.Reader, rows, cols int) (*Grid, error) {
	g := &Grid{Rows: rows, Cols: cols, Cells: make([][]int, 0, rows)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(g.Cells) == rows {
			return nil, fmt.Errorf("line %d: %w: want %d", line, ErrRowCount, rows)
		}
		if len(fields) != cols {
			return nil, fmt.Errorf("row %d: %w: got %d, want %d", len(g.Cells)+1, ErrColumnCount, len(fields), cols)
		}
		row := make([]int, cols)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", len(g.Cells)+1, i+1, err)
			}
			row[i] = v
		}
		g.Cells = append(g.Cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if len(g.Cells) != rows {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRowCount, len(g.Cells), rows)
	}
	return g, nil
}

// LoadFile loads a level from fsys. Files ending in .tmx go through the
// Tiled loader, everything else is read as a plain-text grid.
func LoadFile(fsys fs.FS, name string, rows, cols int) (*Grid, error) {
	if strings.EqualFold(path.Ext(name), ".tmx") {
		return LoadTMX(fsys, name, rows, cols)
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", name, err)
	}
	defer f.Close()

	g, err := ParseGrid(f, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", name, err)
	}
	g.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	return g, nil
}

// LoadAll loads every named level in order and stops at the first failure.
func LoadAll(fsys fs.FS, names []string, rows, cols int) ([]*Grid, error) {
	grids := make([]*Grid, 0, len(names))
	for _, name := range names {
		g, err := LoadFile(fsys, name, rows, cols)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	return grids, nil
}
