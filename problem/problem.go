// Package problem defines the search problem consumed by the algorithms in
// package search, and GridProblem, its robot-navigation implementation.
//
// A Problem supplies the state space (initial and goal cells), the goal test,
// the legal actions, the transition model, the step cost and an admissible
// heuristic. GridProblem is immutable and safe to share between concurrent
// searches.
package problem

import (
	"errors"
	"fmt"
	"math"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
)

// Sentinel errors returned by New.
var (
	// ErrNilGrid is returned when no grid is supplied.
	ErrNilGrid = errors.New("problem: grid is nil")
	// ErrNoInitial is returned when the initial state set is empty.
	ErrNoInitial = errors.New("problem: no initial state")
	// ErrNoGoal is returned when the goal state set is empty.
	ErrNoGoal = errors.New("problem: no goal state")
	// ErrOutOfBounds is returned for an initial or goal cell outside the grid.
	ErrOutOfBounds = errors.New("problem: state outside the grid")
	// ErrBlockedState is returned for an initial or goal cell on a wall.
	ErrBlockedState = errors.New("problem: state on a blocked cell")
)

// Problem is the contract between a search algorithm and its domain.
type Problem interface {
	// Initial returns the start states, in order and without duplicates.
	Initial() []grid.Cell
	// Goal returns the goal states, in order and without duplicates.
	Goal() []grid.Cell
	// GoalTest reports whether s is a goal state.
	GoalTest(s grid.Cell) bool
	// Actions lists the actions applicable in s. Every listed action changes the state.
	Actions(s grid.Cell) []grid.Action
	// Result applies a to s.
	Result(s grid.Cell, a grid.Action) grid.Cell
	// PathCost returns the cost of a path of cost g extended by from -a-> to.
	PathCost(g float64, from grid.Cell, a grid.Action, to grid.Cell) float64
	// Heuristic estimates the remaining cost from s to the nearest goal.
	Heuristic(s grid.Cell) float64
	// Reverse returns the same problem searched from the goals toward the initial states.
	Reverse() Problem
}

// GridProblem navigates a 4-connected grid with unit step costs.
type GridProblem struct {
	grid    *grid.Grid
	initial []grid.Cell
	goal    []grid.Cell
	goalSet map[grid.Cell]struct{}
}

// New validates the initial and goal cells against g and builds a GridProblem.
// Duplicate cells are dropped, keeping the first occurrence.
func New(g *grid.Grid, initial, goal []grid.Cell) (*GridProblem, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(initial) == 0 {
		return nil, ErrNoInitial
	}
	if len(goal) == 0 {
		return nil, ErrNoGoal
	}
	for _, set := range [][]grid.Cell{initial, goal} {
		for _, c := range set {
			if !g.InBounds(c) {
				return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, c, g.Rows(), g.Cols())
			}
			if g.Blocked(c) {
				return nil, fmt.Errorf("%w: %v", ErrBlockedState, c)
			}
		}
	}

	return build(g, dedupe(initial), dedupe(goal)), nil
}

func build(g *grid.Grid, initial, goal []grid.Cell) *GridProblem {
	set := make(map[grid.Cell]struct{}, len(goal))
	for _, c := range goal {
		set[c] = struct{}{}
	}
	return &GridProblem{grid: g, initial: initial, goal: goal, goalSet: set}
}

func dedupe(cs []grid.Cell) []grid.Cell {
	seen := make(map[grid.Cell]struct{}, len(cs))
	out := make([]grid.Cell, 0, len(cs))
	for _, c := range cs {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Grid returns the underlying grid.
func (p *GridProblem) Grid() *grid.Grid { return p.grid }

// Initial returns a copy of the start states.
func (p *GridProblem) Initial() []grid.Cell { return append([]grid.Cell(nil), p.initial...) }

// Goal returns a copy of the goal states.
func (p *GridProblem) Goal() []grid.Cell { return append([]grid.Cell(nil), p.goal...) }

// GoalTest reports whether s equals any goal.
func (p *GridProblem) GoalTest(s grid.Cell) bool {
	_, ok := p.goalSet[s]
	return ok
}

// Actions returns the moves from s that stay on the grid and avoid walls,
// in the order up, down, left, right.
func (p *GridProblem) Actions(s grid.Cell) []grid.Action {
	out := make([]grid.Action, 0, 4)
	for _, a := range grid.Actions() {
		if p.grid.Free(s.Move(a)) {
			out = append(out, a)
		}
	}
	return out
}

// Result moves s by a. A move off the grid or into a wall leaves s unchanged.
func (p *GridProblem) Result(s grid.Cell, a grid.Action) grid.Cell {
	next := s.Move(a)
	if !p.grid.Free(next) {
		return s
	}
	return next
}

// PathCost charges one unit per step.
func (p *GridProblem) PathCost(g float64, _ grid.Cell, _ grid.Action, _ grid.Cell) float64 {
	return g + 1
}

// Heuristic is the Manhattan distance from s to the nearest goal.
// It is admissible and consistent for unit-cost 4-connected moves.
func (p *GridProblem) Heuristic(s grid.Cell) float64 {
	best := math.MaxInt
	for _, g := range p.goal {
		if d := grid.Manhattan(s, g); d < best {
			best = d
		}
	}
	return float64(best)
}

// Reverse swaps initial and goal states over the same grid.
func (p *GridProblem) Reverse() Problem {
	return build(p.grid, p.goal, p.initial)
}
