package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/search"
)

// ErrNilResult is returned by Write when no result is given.
var ErrNilResult = errors.New("report: result is nil")

// MirrorActions returns the opposite of every action, in the same order.
// Applying it twice yields the input.
func MirrorActions(actions []grid.Action) []grid.Action {
	if actions == nil {
		return nil
	}
	out := make([]grid.Action, len(actions))
	for i, a := range actions {
		out[i] = a.Mirror()
	}
	return out
}

// Actions returns the start-to-goal moves of res, or nil when no goal was reached.
func Actions(res *search.Result) []grid.Action {
	if !res.Found() {
		return nil
	}
	out := res.Node.Solution()
	if !res.Bidirectional() {
		return out
	}
	back := MirrorActions(res.Meet.Solution())
	for i := len(back) - 1; i >= 0; i-- {
		out = append(out, back[i])
	}
	return out
}

// Instructions returns the title-cased labels of Actions(res).
// It is nil for an unreachable goal and empty when the robot starts on a goal.
func Instructions(res *search.Result) []string {
	actions := Actions(res)
	if actions == nil {
		return nil
	}
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Title()
	}
	return out
}

// Write prints a summary of res under the name of strategy:
//
//	Search Strategy: ASTAR
//	Final Node: <Node (1,4)>
//	Number of Explored nodes: 9
//	Robot Instructions:
//	[Down, Right]
//
// For an unreachable goal it prints "No goal is reachable; <explored>".
func Write(w io.Writer, strategy search.Strategy, res *search.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if !res.Found() {
		_, err := fmt.Fprintf(w, "No goal is reachable; %d\n", res.Explored)
		return err
	}

	final := res.Node.String()
	if res.Bidirectional() {
		final = fmt.Sprintf("[%v %v]", res.Node, res.Meet)
	}
	_, err := fmt.Fprintf(w,
		"Search Strategy: %v\nFinal Node: %s\nNumber of Explored nodes: %d\nRobot Instructions:\n[%s]\n",
		strategy, final, res.Explored, strings.Join(Instructions(res), ", "))
	return err
}
