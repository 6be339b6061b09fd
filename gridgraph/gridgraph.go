// Package gridgraph provides utilities to treat a 2D grid of set/unset cells
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Labeling of connected regions of set cells
//   - Text rendering of the grid
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice where
// values[y][x] reports whether cell (x,y) is set. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]bool, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := newGrid(w, h, opts)
	for y, row := range values {
		for x, set := range row {
			g.cells[g.index(x, y)].Set = set
		}
	}
	return g, nil
}

// FromBits constructs a Grid from row strings. '1' and '#' mark a set cell,
// '0' and '.' an unset one; anything else yields ErrBadCell.
func FromBits(rows []string, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := newGrid(w, h, opts)
	for y, row := range rows {
		for x := 0; x < w; x++ {
			switch row[x] {
			case '1', '#':
				g.cells[g.index(x, y)].Set = true
			case '0', '.':
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, row[x], x, y)
			}
		}
	}
	return g, nil
}

func newGrid(w, h int, opts GridOptions) *Grid {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i].Group = NoGroup
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	return &Grid{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Cell returns the cell at (x,y) and whether the coordinates are in bounds.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{Group: NoGroup}, false
	}
	return g.cells[g.index(x, y)], true
}

// IsSet reports whether (x,y) is in bounds and set.
func (g *Grid) IsSet(x, y int) bool {
	c, ok := g.Cell(x, y)
	return ok && c.Set
}

// Group returns the region id of (x,y), or NoGroup for unset,
// unlabeled, or out-of-bounds cells.
func (g *Grid) Group(x, y int) int {
	c, _ := g.Cell(x, y)
	return c.Group
}

// SetCount returns the number of set cells.
// Complexity: O(W×H).
func (g *Grid) SetCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Set {
			n++
		}
	}
	return n
}

// Render draws the top-left cols×rows window of the grid, one line per row,
// '#' for set and '.' for unset cells. Dimensions are clamped to the grid.
func (g *Grid) Render(cols, rows int) string {
	cols, rows = clamp(cols, g.Width), clamp(rows, g.Height)
	if cols == 0 || rows == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow((cols + 1) * rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.cells[g.index(x, y)].Set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the whole grid.
func (g *Grid) String() string {
	return g.Render(g.Width, g.Height)
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
