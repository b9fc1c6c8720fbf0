// Package gridstore is a plain rectangular store of integer cell codes.
// It is the raw map a flowfield.Graph is built from: it knows nothing about
// adjacency, passability or distances.
package gridstore

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridstore: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridstore: all rows must have the same length")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridstore: coordinate out of bounds")
)

// Grid is a Width×Height array of cell codes, addressed as (x, y).
type Grid struct {
	w, h  int
	cells [][]int
}

// New creates a w×h grid with every cell set to v.
func New(w, h, v int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	cells := make([][]int, h)
	for y := range cells {
		row := make([]int, w)
		for x := range row {
			row[x] = v
		}
		cells[y] = row
	}
	return &Grid{w: w, h: h, cells: cells}, nil
}

// FromRows deep-copies a rectangular [][]int into a new Grid.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([][]int, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]int(nil), row...)
	}
	return &Grid{w: w, h: len(rows), cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x,y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Cell returns the value at (x,y).
func (g *Grid) Cell(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.cells[y][x], nil
}

// SetCell stores v at (x,y).
func (g *Grid) SetCell(x, y, v int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.cells[y][x] = v
	return nil
}

// Match reports whether (x,y) is inside the grid and holds v.
func (g *Grid) Match(x, y, v int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == v
}

// FillRect sets every cell of the w×h rectangle at (x,y) to v.
// The rectangle is clipped to the grid.
func (g *Grid) FillRect(x, y, w, h, v int) {
	for r := max(y, 0); r < min(y+h, g.h); r++ {
		for c := max(x, 0); c < min(x+w, g.w); c++ {
			g.cells[r][c] = v
		}
	}
}

// Clear sets every cell to v.
func (g *Grid) Clear(v int) {
	g.FillRect(0, 0, g.w, g.h, v)
}

// Rows returns a deep copy of the cells as a [][]int.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.h)
	for y, row := range g.cells {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Scatter sets roughly density×W×H randomly chosen cells to v using a
// deterministic source seeded with seed. It is meant for benchmarks and
// demo maps.
func (g *Grid) Scatter(density float64, v int, seed int64) {
	r := rand.New(rand.NewSource(seed))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if r.Float64() < density {
				g.cells[y][x] = v
			}
		}
	}
}
