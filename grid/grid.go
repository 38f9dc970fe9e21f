package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular board of Free and Blocked cells. It is immutable once built.
type Grid struct {
	rows, cols int
	cells      [][]CellKind
}

// NewGrid builds a rows×cols grid of free cells and applies the given obstacles.
// Returns ErrEmptyGrid for non-positive dimensions and ErrBlockOutOfBounds for
// obstacles that do not fit.
// Complexity: O(R×C + Σ block areas).
func NewGrid(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{rows: rows, cols: cols, cells: make([][]CellKind, rows)}
	for r := range g.cells {
		g.cells[r] = make([]CellKind, cols)
	}
	for _, b := range o.blocks {
		if b.Width <= 0 || b.Height <= 0 || !g.InBounds(Cell{Row: b.Y, Col: b.X}) ||
			!g.InBounds(Cell{Row: b.Y + b.Height - 1, Col: b.X + b.Width - 1}) {
			return nil, fmt.Errorf("%w: %+v in %dx%d", ErrBlockOutOfBounds, b, rows, cols)
		}
		for _, c := range b.Cells() {
			g.cells[c.Row][c.Col] = Blocked
		}
	}
	for _, c := range o.cells {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: cell %v in %dx%d", ErrBlockOutOfBounds, c, rows, cols)
		}
		g.cells[c.Row][c.Col] = Blocked
	}

	return g, nil
}

// FromRows builds a grid from a non-empty, rectangular matrix of kinds.
// The input is deep-copied.
func FromRows(kinds [][]CellKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(kinds), len(kinds[0])
	g := &Grid{rows: rows, cols: cols, cells: make([][]CellKind, rows)}
	for r, row := range kinds {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		g.cells[r] = make([]CellKind, cols)
		copy(g.cells[r], row)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Kind returns the kind of c. Out-of-bounds cells report Blocked.
func (g *Grid) Kind(c Cell) CellKind {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[c.Row][c.Col]
}

// Blocked reports whether c is a wall or lies outside the grid.
func (g *Grid) Blocked(c Cell) bool { return g.Kind(c) == Blocked }

// Free reports whether c can be entered.
func (g *Grid) Free(c Cell) bool { return g.Kind(c) == Free }

// Neighbors returns the free cells one move away from c, in canonical action order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(actionOrder))
	for _, a := range actionOrder {
		if n := c.Move(a); g.Free(n) {
			out = append(out, n)
		}
	}
	return out
}

// index maps c to a row-major index.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders the grid with '.' for free and '#' for blocked cells, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Blocked {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
