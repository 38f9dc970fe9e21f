// Package search finds paths for the robot on a grid problem.
//
// What
//
//   - Six algorithms sharing one signature, func(problem.Problem, ...Option) (*Result, error):
//   - BFS:                FIFO frontier, goal test on generation.
//   - DFS:                LIFO frontier, goal test on generation.
//   - GreedyBestFirst:    priority frontier on f(n) = h(n), goal test on pop.
//   - AStar:              priority frontier on f(n) = g(n) + h(n), goal test on pop.
//   - BidirectionalBFS:   two FIFO searches meeting in the middle.
//   - BidirectionalAStar: two A* searches meeting in the middle, cost-optimal.
//   - Multiple initial and goal states: every initial state seeds the same
//     frontier; the goal test accepts any goal.
//   - Result.Explored counts frontier insertions, seeds and re-insertions
//     after a cheaper path included, not pops.
//   - Observer hooks mirror the four events a visualizer draws: node,
//     explored, frontier and path.
//
// Determinism
//
//	Actions are expanded in the order up, down, left, right and priority ties
//	break on the smaller cell, so paths and explored counts are reproducible.
//
// Outcomes
//
//   - Goal reached:     Result.Node != nil, Result.Path runs start → goal.
//   - Goal unreachable: Result.Node == nil, Result.Path == nil, err == nil.
//   - Errors:           ErrNilProblem, ErrOptionViolation, ErrBudgetExceeded,
//     ErrFrontierInvariant, or the context's error.
//
// Usage
//
//	res, err := search.AStar(p, search.WithOnNode(func(c grid.Cell) { draw(c) }))
//	if err != nil {
//	    // handle
//	}
//	if !res.Found() {
//	    // no path
//	}
//
//	// or pick the algorithm at run time:
//	s, _ := search.ParseStrategy("cus2")
//	res, err = search.Run(s, p)
//
// Concurrency
//
//	Each call owns its frontier and explored set. Concurrent calls may share
//	a problem.GridProblem, which is read-only.
package search
