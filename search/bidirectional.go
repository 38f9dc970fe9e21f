package search

import (
	"fmt"
	"math"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/node"
	"github.com/ToanNguyenSwinAdventure/robotnav/pqueue"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
)

// half is one direction of a meet-in-the-middle search. The forward half
// searches p from its initial states; the backward half searches p.Reverse()
// from the goals. reached maps every state the half has generated, frontier
// or explored, to its best node.
type half struct {
	problem  problem.Problem
	explored *exploredSet
	reached  map[grid.Cell]*node.Node
	score    func(*node.Node) float64 // bidirectional A* only
}

func newHalf(p problem.Problem) *half {
	return &half{problem: p, explored: newExploredSet(), reached: make(map[grid.Cell]*node.Node)}
}

// meeting is a state reached from both sides.
type meeting struct {
	fwd, bwd *node.Node
}

func (m meeting) cost() float64 { return m.fwd.PathCost + m.bwd.PathCost }

// join concatenates the forward path with the reversed backward path,
// dropping the duplicated meeting state.
func (m meeting) join() []*node.Node {
	fwd := m.fwd.Path()
	bwd := m.bwd.Path()
	path := make([]*node.Node, 0, len(fwd)+len(bwd)-1)
	path = append(path, fwd...)
	for i := len(bwd) - 2; i >= 0; i-- {
		path = append(path, bwd[i])
	}
	return path
}

// meet pairs child, generated by side, with the other side's node for the same state.
func meet(side, other *half, fwd *half, child *node.Node) (meeting, bool) {
	peer, ok := other.reached[child.State]
	if !ok {
		return meeting{}, false
	}
	if side == fwd {
		return meeting{fwd: child, bwd: peer}, true
	}
	return meeting{fwd: peer, bwd: child}, true
}

func (w *walker) met(m meeting) *Result {
	path := m.join()
	w.opts.OnPath(node.States(path))
	return &Result{Node: m.fwd, Meet: m.bwd, Explored: w.count, Path: path}
}

// seedBidirectional counts and roots both halves. It returns a root when an
// initial state is already a goal.
func (w *walker) seedBidirectional(fwd, bwd *half, push func(h *half, n *node.Node)) (*node.Node, error) {
	root, err := w.seed(func(n *node.Node) {
		fwd.reached[n.State] = n
		push(fwd, n)
	})
	if err != nil || root != nil {
		return root, err
	}
	for _, s := range bwd.problem.Initial() {
		n := node.New(s)
		if err := w.generated(); err != nil {
			return nil, err
		}
		bwd.reached[s] = n
		push(bwd, n)
	}
	return nil, nil
}

// BidirectionalBFS runs two breadth-first searches, one from the initial
// states and one from the goals, popping one node from each side in turn.
// It stops at the first state generated by one side that the other side has
// already reached, and fails as soon as either frontier is empty.
//
// The path is shortest for one initial state and one goal. With several of
// either, the first meeting can be a step or more longer than the optimum.
func BidirectionalBFS(p problem.Problem, opts ...Option) (*Result, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	fwd, bwd := newHalf(p), newHalf(p.Reverse())
	frontiers := map[*half]*fifo{fwd: newFIFO(), bwd: newFIFO()}

	root, err := w.seedBidirectional(fwd, bwd, func(h *half, n *node.Node) { frontiers[h].push(n) })
	if err != nil {
		return w.unreachable(), err
	}
	if root != nil {
		return w.found(root), nil
	}

	sides := [2]*half{fwd, bwd}
	for turn := 0; ; turn ^= 1 {
		side, other := sides[turn], sides[turn^1]
		frontier := frontiers[side]
		if frontier.empty() {
			return w.unreachable(), nil
		}
		if err := w.cancelled(); err != nil {
			return w.unreachable(), err
		}

		n := frontier.pop()
		if !side.explored.add(n.State) {
			continue
		}
		w.opts.OnNode(n.State)
		w.opts.OnExplored(side.explored.order)

		for _, child := range n.Expand(side.problem) {
			if side.explored.has(child.State) || frontier.contains(child.State) {
				continue
			}
			if err := w.generated(); err != nil {
				return w.unreachable(), err
			}
			side.reached[child.State] = child
			frontier.push(child)
			w.opts.OnFrontier(child.State)
			if m, ok := meet(side, other, fwd, child); ok {
				return w.met(m), nil
			}
		}
	}
}

// BidirectionalAStar runs two A* searches toward each other. The forward
// side estimates the distance to the nearest goal; the backward side, which
// searches p.Reverse(), estimates the distance to the nearest initial state.
//
// Every time one side generates or improves a state the other side has
// reached, the combined cost is recorded. The search stops once the best
// recorded cost is no greater than the larger of the two frontiers' minimum
// f-scores, or when a frontier empties; with consistent heuristics the
// returned path is then optimal.
func BidirectionalAStar(p problem.Problem, opts ...Option) (*Result, error) {
	w, err := newWalker(p, opts)
	if err != nil {
		return nil, err
	}
	fwd, bwd := newHalf(p), newHalf(p.Reverse())
	fwd.score = memoize(astarScore(fwd.problem))
	bwd.score = memoize(astarScore(bwd.problem))
	frontiers := map[*half]*pqueue.Queue{
		fwd: pqueue.New(pqueue.Min, fwd.score),
		bwd: pqueue.New(pqueue.Min, bwd.score),
	}

	root, err := w.seedBidirectional(fwd, bwd, func(h *half, n *node.Node) { frontiers[h].Push(n) })
	if err != nil {
		return w.unreachable(), err
	}
	if root != nil {
		return w.found(root), nil
	}

	var best *meeting
	sides := [2]*half{fwd, bwd}
	for turn := 0; ; turn ^= 1 {
		side, other := sides[turn], sides[turn^1]
		frontier := frontiers[side]

		if done, err := settled(best, frontiers[fwd], frontiers[bwd]); err != nil {
			return w.unreachable(), err
		} else if done {
			if best == nil {
				return w.unreachable(), nil
			}
			return w.met(*best), nil
		}
		if err := w.cancelled(); err != nil {
			return w.unreachable(), err
		}

		n, err := frontier.Pop()
		if err != nil {
			return w.unreachable(), fmt.Errorf("%w: %w", ErrFrontierInvariant, err)
		}
		side.explored.add(n.State)
		w.opts.OnNode(n.State)
		w.opts.OnExplored(side.explored.order)
		w.opts.OnPath(node.States(n.Path()))

		for _, child := range n.Expand(side.problem) {
			switch {
			case frontier.Contains(child.State):
				queued, err := frontier.Score(child.State)
				if err != nil {
					return w.unreachable(), fmt.Errorf("%w: %w", ErrFrontierInvariant, err)
				}
				if side.score(child) >= queued {
					continue
				}
				if err := frontier.Remove(child.State); err != nil {
					return w.unreachable(), fmt.Errorf("%w: %w", ErrFrontierInvariant, err)
				}
			case side.explored.has(child.State):
				continue
			}
			if err := w.generated(); err != nil {
				return w.unreachable(), err
			}
			side.reached[child.State] = child
			frontier.Push(child)
			w.opts.OnFrontier(child.State)

			if m, ok := meet(side, other, fwd, child); ok && (best == nil || m.cost() < best.cost()) {
				best = &m
			}
		}
	}
}

// astarScore is f(n) = g(n) + h(n) under p's heuristic.
func astarScore(p problem.Problem) func(*node.Node) float64 {
	return func(n *node.Node) float64 {
		return n.PathCost + p.Heuristic(n.State)
	}
}

// settled reports whether bidirectional A* can stop: a frontier is empty, or
// the best meeting costs no more than max(min f forward, min f backward).
func settled(best *meeting, fwd, bwd *pqueue.Queue) (bool, error) {
	if fwd.Len() == 0 || bwd.Len() == 0 {
		return true, nil
	}
	if best == nil {
		return false, nil
	}
	top := math.Inf(-1)
	for _, q := range []*pqueue.Queue{fwd, bwd} {
		f, err := q.PeekScore()
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrFrontierInvariant, err)
		}
		top = math.Max(top, f)
	}
	return best.cost() <= top, nil
}
