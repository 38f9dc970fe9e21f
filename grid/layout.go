package grid

import "fmt"

// Layout describes a complete navigation scenario declaratively.
// Coordinates are [row, col] pairs.
type Layout struct {
	Rows    int      `yaml:"rows"`
	Cols    int      `yaml:"cols"`
	Initial [][2]int `yaml:"initial"`
	Goal    [][2]int `yaml:"goal"`
	Blocks  []Block  `yaml:"blocks"`
	Walls   [][2]int `yaml:"walls"`
}

// Build constructs the grid and returns it with the initial and goal cells.
func (l Layout) Build() (*Grid, []Cell, []Cell, error) {
	g, err := NewGrid(l.Rows, l.Cols, WithBlocks(l.Blocks...), WithBlockedCells(cells(l.Walls)...))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("grid: layout: %w", err)
	}
	return g, cells(l.Initial), cells(l.Goal), nil
}

func cells(pairs [][2]int) []Cell {
	out := make([]Cell, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Cell{Row: p[0], Col: p[1]})
	}
	return out
}
