package search_test

import (
	"fmt"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
	"github.com/ToanNguyenSwinAdventure/robotnav/search"
)

// ExampleBFS finds a corner-to-corner route on an open 3×3 grid.
// Down is tried before Right, so the route hugs the left edge first.
func ExampleBFS() {
	g, _ := grid.NewGrid(3, 3)
	p, _ := problem.New(g, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(2, 2)})

	res, err := search.BFS(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.States())
	fmt.Println(res.Explored)
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
	// 9
}

// ExampleAStar shows that equal f-scores are broken by the smaller state,
// which steers A* along the top row.
func ExampleAStar() {
	g, _ := grid.NewGrid(3, 3)
	p, _ := problem.New(g, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(2, 2)})

	res, _ := search.AStar(p)
	fmt.Println(res.States(), res.Cost())
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2)] 4
}

// ExampleBidirectionalBFS meets in the middle of a corridor.
func ExampleBidirectionalBFS() {
	g, _ := grid.NewGrid(1, 7)
	p, _ := problem.New(g, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(0, 6)})

	res, _ := search.BidirectionalBFS(p)
	fmt.Println("meet:", res.Node.State)
	fmt.Println(len(res.Path), res.Explored)
	// Output:
	// meet: (0,3)
	// 7 8
}

// ExampleRun selects an algorithm by its short method name.
func ExampleRun() {
	g, _ := grid.NewGrid(3, 3, grid.WithBlockedCells(grid.C(0, 1), grid.C(1, 0)))
	p, _ := problem.New(g, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(2, 2)})

	s, _ := search.ParseStrategy("cus2")
	res, _ := search.Run(s, p)
	fmt.Println(s, res.Found(), res.Explored)
	// Output:
	// BIDIRECTIONAL ASTAR false 2
}
