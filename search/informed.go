package search

import (
	"fmt"

	"github.com/ToanNguyenSwinAdventure/robotnav/node"
	"github.com/ToanNguyenSwinAdventure/robotnav/pqueue"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
)

// GreedyBestFirst expands the node closest to a goal by heuristic alone, f(n) = h(n).
// It is complete on finite grids but not optimal.
func GreedyBestFirst(p problem.Problem, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	return bestFirst(p, func(n *node.Node) float64 {
		return p.Heuristic(n.State)
	}, opts)
}

// AStar expands nodes by f(n) = g(n) + h(n). With the consistent Manhattan
// heuristic of problem.GridProblem the returned path has minimal cost.
func AStar(p problem.Problem, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	return bestFirst(p, func(n *node.Node) float64 {
		return n.PathCost + p.Heuristic(n.State)
	}, opts)
}

// memoize caches f per node; a node's score never changes once computed.
func memoize(f func(*node.Node) float64) func(*node.Node) float64 {
	cache := make(map[*node.Node]float64)
	return func(n *node.Node) float64 {
		if v, ok := cache[n]; ok {
			return v
		}
		v := f(n)
		cache[n] = v
		return v
	}
}

// bestFirst is graph search over a priority queue ordered by f.
//
// Goal tests happen when a node is popped. A child whose state is already
// queued replaces the queued node only when its f is strictly lower; the
// replacement is counted as a new generation.
func bestFirst(p problem.Problem, f func(*node.Node) float64, opts []Option) (*Result, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	f = memoize(f)
	frontier := pqueue.New(pqueue.Min, f)

	root, err := w.seed(frontier.Push)
	if err != nil {
		return w.unreachable(), err
	}
	if root != nil {
		return w.found(root), nil
	}

	explored := newExploredSet()
	for frontier.Len() > 0 {
		if err := w.cancelled(); err != nil {
			return w.unreachable(), err
		}

		n, err := frontier.Pop()
		if err != nil {
			return w.unreachable(), fmt.Errorf("%w: %w", ErrFrontierInvariant, err)
		}
		explored.add(n.State)
		w.opts.OnNode(n.State)
		w.opts.OnExplored(explored.order)

		if p.GoalTest(n.State) {
			return w.found(n), nil
		}
		w.opts.OnPath(node.States(n.Path()))

		for _, child := range n.Expand(p) {
			switch {
			case frontier.Contains(child.State):
				queued, err := frontier.Score(child.State)
				if err != nil {
					return w.unreachable(), fmt.Errorf("%w: %w", ErrFrontierInvariant, err)
				}
				if f(child) >= queued {
					continue
				}
				if err := frontier.Remove(child.State); err != nil {
					return w.unreachable(), fmt.Errorf("%w: %w", ErrFrontierInvariant, err)
				}
			case explored.has(child.State):
				continue
			}
			if err := w.generated(); err != nil {
				return w.unreachable(), err
			}
			frontier.Push(child)
			w.opts.OnFrontier(child.State)
		}
	}

	return w.unreachable(), nil
}
