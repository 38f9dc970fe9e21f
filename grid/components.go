package grid

// Components finds the 4-connected regions of free cells.
// Each component lists its cells in discovery order; components are ordered
// by their first cell in row-major order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Cell

	for i := range seen {
		start := g.Coordinate(i)
		if seen[i] || g.cells[start.Row][start.Col] == Blocked {
			continue
		}
		queue := []Cell{start}
		seen[i] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi]) {
				if j := g.index(n); !seen[j] {
					seen[j] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether some cell of from shares a component with some cell of to.
func (g *Grid) Connected(from, to []Cell) bool {
	label := make(map[Cell]int, g.rows*g.cols)
	for i, comp := range g.Components() {
		for _, c := range comp {
			label[c] = i
		}
	}
	want := make(map[int]bool, len(to))
	for _, c := range to {
		if id, ok := label[c]; ok {
			want[id] = true
		}
	}
	for _, c := range from {
		if id, ok := label[c]; ok && want[id] {
			return true
		}
	}
	return false
}
