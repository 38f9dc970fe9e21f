package search

import (
	"context"
	"fmt"

	"github.com/ToanNguyenSwinAdventure/robotnav/node"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
)

// walker holds the state every search shares: the problem, the options and
// the generation counter.
type walker struct {
	problem problem.Problem
	opts    Options
	ctx     context.Context
	count   int
}

// newWalker validates the problem and applies the options.
func newWalker(p problem.Problem, opts []Option) (*walker, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &walker{problem: p, opts: o, ctx: o.Ctx}, nil
}

// generated counts one frontier insertion and enforces MaxExplored.
func (w *walker) generated() error {
	w.count++
	if w.opts.MaxExplored > 0 && w.count > w.opts.MaxExplored {
		return fmt.Errorf("%w: %d nodes generated, limit %d", ErrBudgetExceeded, w.count, w.opts.MaxExplored)
	}
	return nil
}

// cancelled returns the context error once the context is done.
func (w *walker) cancelled() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// found reports n's path to the observer and wraps it in a Result.
func (w *walker) found(n *node.Node) *Result {
	path := n.Path()
	w.opts.OnPath(node.States(path))
	return &Result{Node: n, Explored: w.count, Path: path}
}

// unreachable is the result of an exhausted frontier.
func (w *walker) unreachable() *Result {
	return &Result{Explored: w.count}
}

// seed creates a root per initial state, counting each one. It returns the
// first root that already satisfies the goal test, if any.
func (w *walker) seed(push func(*node.Node)) (*node.Node, error) {
	for _, s := range w.problem.Initial() {
		root := node.New(s)
		if err := w.generated(); err != nil {
			return nil, err
		}
		if w.problem.GoalTest(s) {
			return root, nil
		}
		push(root)
	}
	return nil, nil
}
