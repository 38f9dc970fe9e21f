package problem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
)

func newProblem(t *testing.T, rows, cols int, initial, goal []grid.Cell, walls ...grid.Cell) *problem.GridProblem {
	t.Helper()
	g, err := grid.NewGrid(rows, cols, grid.WithBlockedCells(walls...))
	require.NoError(t, err)
	p, err := problem.New(g, initial, goal)
	require.NoError(t, err)
	return p
}

func TestNew_Validation(t *testing.T) {
	g, err := grid.NewGrid(3, 3, grid.WithBlockedCells(grid.C(1, 1)))
	require.NoError(t, err)
	ok := []grid.Cell{grid.C(0, 0)}

	cases := []struct {
		name    string
		g       *grid.Grid
		initial []grid.Cell
		goal    []grid.Cell
		err     error
	}{
		{"NilGrid", nil, ok, ok, problem.ErrNilGrid},
		{"NoInitial", g, nil, ok, problem.ErrNoInitial},
		{"NoGoal", g, ok, nil, problem.ErrNoGoal},
		{"InitialOutside", g, []grid.Cell{grid.C(3, 0)}, ok, problem.ErrOutOfBounds},
		{"GoalOutside", g, ok, []grid.Cell{grid.C(0, -1)}, problem.ErrOutOfBounds},
		{"GoalOnWall", g, ok, []grid.Cell{grid.C(1, 1)}, problem.ErrBlockedState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.New(tc.g, tc.initial, tc.goal)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_Dedupe(t *testing.T) {
	p := newProblem(t, 2, 2,
		[]grid.Cell{grid.C(0, 0), grid.C(1, 0), grid.C(0, 0)},
		[]grid.Cell{grid.C(1, 1), grid.C(1, 1)})
	assert.Equal(t, []grid.Cell{grid.C(0, 0), grid.C(1, 0)}, p.Initial())
	assert.Equal(t, []grid.Cell{grid.C(1, 1)}, p.Goal())
}

func TestGoalTest(t *testing.T) {
	p := newProblem(t, 3, 3, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(2, 2), grid.C(0, 2)})
	assert.True(t, p.GoalTest(grid.C(2, 2)))
	assert.True(t, p.GoalTest(grid.C(0, 2)))
	assert.False(t, p.GoalTest(grid.C(0, 0)))
}

// TestActions_AgreeWithResult checks that every reported action moves the robot
// and every withheld action would be a no-op.
func TestActions_AgreeWithResult(t *testing.T) {
	p := newProblem(t, 3, 4, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(2, 3)},
		grid.C(1, 1), grid.C(0, 2))

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			s := grid.C(r, c)
			if p.Grid().Blocked(s) {
				continue
			}
			legal := map[grid.Action]bool{}
			for _, a := range p.Actions(s) {
				legal[a] = true
				assert.NotEqual(t, s, p.Result(s, a), "action %s from %v must change state", a, s)
			}
			for _, a := range grid.Actions() {
				if !legal[a] {
					assert.Equal(t, s, p.Result(s, a), "withheld action %s from %v must be a no-op", a, s)
				}
			}
		}
	}
}

func TestActions_Order(t *testing.T) {
	p := newProblem(t, 3, 3, []grid.Cell{grid.C(1, 1)}, []grid.Cell{grid.C(0, 0)})
	assert.Equal(t, []grid.Action{grid.Up, grid.Down, grid.Left, grid.Right}, p.Actions(grid.C(1, 1)))
	assert.Equal(t, []grid.Action{grid.Down, grid.Right}, p.Actions(grid.C(0, 0)))
	assert.Equal(t, []grid.Action{grid.Up, grid.Left}, p.Actions(grid.C(2, 2)))
}

func TestPathCost(t *testing.T) {
	p := newProblem(t, 1, 2, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(0, 1)})
	assert.Equal(t, 4.0, p.PathCost(3, grid.C(0, 0), grid.Right, grid.C(0, 1)))
}

// TestHeuristic checks nearest-goal Manhattan distance, its determinism and
// non-negativity, and its consistency across every legal step.
func TestHeuristic(t *testing.T) {
	p := newProblem(t, 4, 5, []grid.Cell{grid.C(0, 0)}, []grid.Cell{grid.C(3, 4), grid.C(0, 3)},
		grid.C(1, 2), grid.C(2, 2))

	assert.Equal(t, 3.0, p.Heuristic(grid.C(0, 0)))
	assert.Equal(t, 0.0, p.Heuristic(grid.C(3, 4)))

	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			s := grid.C(r, c)
			h := p.Heuristic(s)
			assert.GreaterOrEqual(t, h, 0.0)
			assert.Equal(t, h, p.Heuristic(s))
			for _, a := range p.Actions(s) {
				next := p.Result(s, a)
				assert.LessOrEqual(t, h, p.PathCost(0, s, a, next)+p.Heuristic(next), "inconsistent at %v -%s->", s, a)
			}
		}
	}
}

func TestReverse(t *testing.T) {
	p := newProblem(t, 3, 3, []grid.Cell{grid.C(0, 0), grid.C(2, 0)}, []grid.Cell{grid.C(2, 2)})
	r := p.Reverse()

	assert.Equal(t, p.Goal(), r.Initial())
	assert.Equal(t, p.Initial(), r.Goal())
	assert.True(t, r.GoalTest(grid.C(2, 0)))
	assert.False(t, r.GoalTest(grid.C(2, 2)))
	// distance back to the nearest initial state
	assert.Equal(t, 2.0, r.Heuristic(grid.C(2, 2)))
	assert.Equal(t, 1.0, r.Heuristic(grid.C(1, 0)))
	assert.Equal(t, p.Actions(grid.C(1, 1)), r.Actions(grid.C(1, 1)))
}
