package search

import (
	"github.com/ToanNguyenSwinAdventure/robotnav/node"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
)

// BFS runs breadth-first graph search on p.
//
// The frontier is FIFO. Children are goal-tested as they are generated, so
// the search stops one layer earlier than a pop-time test would. A child is
// generated only if its state is neither explored nor already queued.
//
// Returns ErrNilProblem, ErrOptionViolation, ErrBudgetExceeded or a context
// error. An unreachable goal is not an error: the Result has a nil Node.
func BFS(p problem.Problem, opts ...Option) (*Result, error) {
	return uninformed(p, newFIFO(), opts)
}

// DFS runs depth-first graph search on p. It shares BFS's duplicate
// suppression and early goal test but expands the most recently generated
// node first.
func DFS(p problem.Problem, opts ...Option) (*Result, error) {
	return uninformed(p, newLIFO(), opts)
}

func uninformed(p problem.Problem, frontier listFrontier, opts []Option) (*Result, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}

	root, err := w.seed(frontier.push)
	if err != nil {
		return w.unreachable(), err
	}
	if root != nil {
		return w.found(root), nil
	}

	explored := newExploredSet()
	for !frontier.empty() {
		if err := w.cancelled(); err != nil {
			return w.unreachable(), err
		}

		n := frontier.pop()
		if !explored.add(n.State) {
			continue
		}
		w.opts.OnNode(n.State)
		w.opts.OnExplored(explored.order)

		for _, child := range n.Expand(p) {
			if explored.has(child.State) || frontier.contains(child.State) {
				continue
			}
			if err := w.generated(); err != nil {
				return w.unreachable(), err
			}
			if p.GoalTest(child.State) {
				return w.found(child), nil
			}
			frontier.push(child)
			w.opts.OnPath(node.States(child.Path()))
			w.opts.OnFrontier(child.State)
		}
	}

	return w.unreachable(), nil
}
