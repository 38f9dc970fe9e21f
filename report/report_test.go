package report_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
	"github.com/ToanNguyenSwinAdventure/robotnav/report"
	"github.com/ToanNguyenSwinAdventure/robotnav/search"
)

func solve(t *testing.T, s search.Strategy, l grid.Layout) *search.Result {
	t.Helper()
	g, initial, goal, err := l.Build()
	require.NoError(t, err)
	p, err := problem.New(g, initial, goal)
	require.NoError(t, err)
	res, err := search.Run(s, p)
	require.NoError(t, err)
	return res
}

var (
	open3 = grid.Layout{Rows: 3, Cols: 3, Initial: [][2]int{{0, 0}}, Goal: [][2]int{{2, 2}}}
	// the 5x11 board of the navigation assignment
	board = grid.Layout{
		Rows:    5,
		Cols:    11,
		Initial: [][2]int{{1, 0}},
		Goal:    [][2]int{{0, 7}, {3, 10}},
		Blocks: []grid.Block{
			{X: 2, Y: 0, Width: 2, Height: 2},
			{X: 8, Y: 0, Width: 1, Height: 2},
			{X: 10, Y: 0, Width: 1, Height: 1},
			{X: 2, Y: 3, Width: 1, Height: 2},
			{X: 3, Y: 4, Width: 3, Height: 1},
			{X: 9, Y: 3, Width: 1, Height: 1},
			{X: 8, Y: 4, Width: 2, Height: 1},
		},
	}
)

func TestInstructions(t *testing.T) {
	cases := []struct {
		name     string
		strategy search.Strategy
		layout   grid.Layout
		want     []string
	}{
		{"BFS", search.StrategyBFS, open3, []string{"Down", "Down", "Right", "Right"}},
		{"AStar", search.StrategyAStar, open3, []string{"Right", "Right", "Down", "Down"}},
		{"BidirectionalBFS", search.StrategyBidirectionalBFS, open3, []string{"Down", "Right", "Right", "Down"}},
		{"Corridor", search.StrategyBidirectionalAStar,
			grid.Layout{Rows: 1, Cols: 7, Initial: [][2]int{{0, 0}}, Goal: [][2]int{{0, 6}}},
			[]string{"Right", "Right", "Right", "Right", "Right", "Right"}},
		{"StartOnGoal", search.StrategyDFS,
			grid.Layout{Rows: 2, Cols: 2, Initial: [][2]int{{1, 1}}, Goal: [][2]int{{1, 1}}},
			[]string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, report.Instructions(solve(t, tc.strategy, tc.layout)))
		})
	}
}

func TestInstructions_Unreachable(t *testing.T) {
	walled := grid.Layout{Rows: 3, Cols: 3, Initial: [][2]int{{0, 0}}, Goal: [][2]int{{1, 1}}, Walls: [][2]int{{0, 1}, {1, 0}}}
	for _, s := range search.Strategies() {
		res := solve(t, s, walled)
		assert.Nil(t, report.Instructions(res), "%v", s)
		assert.Nil(t, report.Actions(res), "%v", s)
	}
	assert.Nil(t, report.Instructions(nil))
}

// TestActions_ReplayPath walks the reported actions from the start and
// expects to retrace the result's path exactly, for every strategy.
func TestActions_ReplayPath(t *testing.T) {
	for _, s := range search.Strategies() {
		res := solve(t, s, board)
		require.True(t, res.Found(), "%v", s)

		states := res.States()
		at := states[0]
		replay := []grid.Cell{at}
		for _, a := range report.Actions(res) {
			at = at.Move(a)
			replay = append(replay, at)
		}
		assert.Equal(t, states, replay, "%v", s)
	}
}

func TestMirrorActions_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	all := grid.Actions()
	for n := 0; n < 20; n++ {
		seq := make([]grid.Action, n)
		for i := range seq {
			seq[i] = all[rng.Intn(len(all))]
		}
		mirrored := report.MirrorActions(seq)
		for i := range seq {
			assert.NotEqual(t, seq[i], mirrored[i])
		}
		assert.Equal(t, seq, report.MirrorActions(mirrored))
	}
	assert.Nil(t, report.MirrorActions(nil))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, search.StrategyBFS, solve(t, search.StrategyBFS, open3)))
	assert.Equal(t, "Search Strategy: BFS\n"+
		"Final Node: <Node (2,2)>\n"+
		"Number of Explored nodes: 9\n"+
		"Robot Instructions:\n"+
		"[Down, Down, Right, Right]\n", buf.String())

	buf.Reset()
	res := solve(t, search.StrategyBidirectionalBFS, grid.Layout{Rows: 1, Cols: 7, Initial: [][2]int{{0, 0}}, Goal: [][2]int{{0, 6}}})
	require.NoError(t, report.Write(&buf, search.StrategyBidirectionalBFS, res))
	assert.Contains(t, buf.String(), "Search Strategy: BIDIRECTIONAL BFS\n")
	assert.Contains(t, buf.String(), "Final Node: [<Node (0,3)> <Node (0,3)>]\n")
	assert.Contains(t, buf.String(), "Number of Explored nodes: 8\n")

	buf.Reset()
	walled := grid.Layout{Rows: 3, Cols: 3, Initial: [][2]int{{0, 0}}, Goal: [][2]int{{1, 1}}, Walls: [][2]int{{0, 1}, {1, 0}}}
	require.NoError(t, report.Write(&buf, search.StrategyBFS, solve(t, search.StrategyBFS, walled)))
	assert.Equal(t, "No goal is reachable; 1\n", buf.String())

	assert.ErrorIs(t, report.Write(&buf, search.StrategyBFS, nil), report.ErrNilResult)
}
