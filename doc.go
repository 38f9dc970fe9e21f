// Package robotnav finds routes for a robot moving on a rectangular grid of
// free and blocked cells.
//
// What is robotnav?
//
//	A small pathfinding toolkit built around one problem shape:
//		• grid     cells, the four moves, obstacle blocks, YAML layouts
//		• problem  start and goal cells, moves, step costs, heuristic
//		• node     search-tree nodes and path reconstruction
//		• pqueue   min/max priority queue over nodes, indexed by cell
//		• search   BFS, DFS, Greedy Best-First, A*, Bidirectional BFS and A*
//		• report   robot instructions and a printable summary
//
// Quick example:
//
//	S . #
//	. . #      S = (0,0), G = (2,2)
//	. . G
//
//	g, _ := grid.NewGrid(3, 3, grid.WithBlockedCells(grid.C(0, 2), grid.C(1, 2)))
//	p, _ := problem.New(g, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(2, 2)})
//	res, _ := search.AStar(p)
//	fmt.Println(report.Instructions(res)) // [Right Down Down Right]
//
// Every search accepts functional options: a context for cancellation, a
// budget on generated nodes, and observer hooks for drawing the search as it
// runs. A runnable driver lives in examples/.
package robotnav
