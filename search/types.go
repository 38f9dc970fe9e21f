package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/node"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is returned when more nodes are generated than WithMaxExplored allows.
	ErrBudgetExceeded = errors.New("search: explored budget exceeded")

	// ErrUnknownStrategy is returned by ParseStrategy and Run for unknown strategies.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrFrontierInvariant wraps a priority-queue failure that the search loop
	// guards against; seeing it means the loop itself is broken.
	ErrFrontierInvariant = errors.New("search: frontier invariant violated")
)

// Observer receives the progress events a visualizer draws.
// Methods run synchronously on the searching goroutine.
type Observer interface {
	// Node is called when a state is popped for expansion.
	Node(s grid.Cell)
	// Explored is called with the states expanded so far. The slice is only
	// valid for the duration of the call.
	Explored(states []grid.Cell)
	// Frontier is called when a state is added to the open set.
	Frontier(s grid.Cell)
	// Path is called with a candidate or final path.
	Path(states []grid.Cell)
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// OnNode is called when a state is popped for expansion.
	OnNode func(s grid.Cell)

	// OnExplored is called after each expansion with the expanded states in order.
	OnExplored func(states []grid.Cell)

	// OnFrontier is called when a state enters the frontier.
	OnFrontier func(s grid.Cell)

	// OnPath is called with candidate paths and with the final path.
	OnPath func(states []grid.Cell)

	// MaxExplored, if > 0, caps the number of generated nodes.
	// A value of 0 disables the cap.
	MaxExplored int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op hooks
//   - no generation cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnNode:      func(grid.Cell) {},
		OnExplored:  func([]grid.Cell) {},
		OnFrontier:  func(grid.Cell) {},
		OnPath:      func([]grid.Cell) {},
		MaxExplored: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnNode registers a callback for popped states.
func WithOnNode(fn func(s grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNode = fn
		}
	}
}

// WithOnExplored registers a callback for the explored list.
func WithOnExplored(fn func(states []grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplored = fn
		}
	}
}

// WithOnFrontier registers a callback for frontier insertions.
func WithOnFrontier(fn func(s grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFrontier = fn
		}
	}
}

// WithOnPath registers a callback for candidate and final paths.
func WithOnPath(fn func(states []grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// WithObserver routes all four progress events to obs. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			return
		}
		o.OnNode = obs.Node
		o.OnExplored = obs.Explored
		o.OnFrontier = obs.Frontier
		o.OnPath = obs.Path
	}
}

// WithMaxExplored caps the number of generated nodes.
//
//	n > 0:  abort with ErrBudgetExceeded once more than n nodes are generated
//	n == 0: no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExplored(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExplored cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExplored = n
	}
}

// Result is the outcome of a search.
//
//   - Node: the terminal node; for bidirectional searches the initial-side
//     node at the meeting state. Nil when no goal is reachable.
//   - Meet: the goal-side node at the meeting state of a bidirectional
//     search; nil otherwise. Its actions describe moves toward the goal
//     side's root, i.e. the inverse of the robot's travel direction.
//   - Explored: the number of frontier insertions, seeds included.
//   - Path: the full start-to-goal node sequence, nil when unreachable.
type Result struct {
	Node     *node.Node
	Meet     *node.Node
	Explored int
	Path     []*node.Node
}

// Found reports whether a goal was reached.
func (r *Result) Found() bool { return r != nil && r.Node != nil }

// Bidirectional reports whether r came from a meet-in-the-middle search.
func (r *Result) Bidirectional() bool { return r != nil && r.Meet != nil }

// States returns the states along Path.
func (r *Result) States() []grid.Cell { return node.States(r.Path) }

// Cost returns the path cost, or -1 when no goal was reached.
func (r *Result) Cost() float64 {
	if !r.Found() {
		return -1
	}
	if r.Meet != nil {
		return r.Node.PathCost + r.Meet.PathCost
	}
	return r.Node.PathCost
}
