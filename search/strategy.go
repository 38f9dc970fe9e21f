package search

import (
	"fmt"
	"strings"

	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
)

// Strategy selects one of the six search algorithms.
type Strategy int

const (
	// StrategyBFS is breadth-first search.
	StrategyBFS Strategy = iota
	// StrategyDFS is depth-first search.
	StrategyDFS
	// StrategyGBFS is greedy best-first search.
	StrategyGBFS
	// StrategyAStar is A* search.
	StrategyAStar
	// StrategyBidirectionalBFS is bidirectional breadth-first search ("CUS1").
	StrategyBidirectionalBFS
	// StrategyBidirectionalAStar is bidirectional A* search ("CUS2").
	StrategyBidirectionalAStar
)

var strategyNames = [...]string{
	StrategyBFS:                "BFS",
	StrategyDFS:                "DFS",
	StrategyGBFS:               "GBFS",
	StrategyAStar:              "ASTAR",
	StrategyBidirectionalBFS:   "BIDIRECTIONAL BFS",
	StrategyBidirectionalAStar: "BIDIRECTIONAL ASTAR",
}

var strategyFuncs = [...]func(problem.Problem, ...Option) (*Result, error){
	StrategyBFS:                BFS,
	StrategyDFS:                DFS,
	StrategyGBFS:               GreedyBestFirst,
	StrategyAStar:              AStar,
	StrategyBidirectionalBFS:   BidirectionalBFS,
	StrategyBidirectionalAStar: BidirectionalAStar,
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategyNames))
	for i := range out {
		out[i] = Strategy(i)
	}
	return out
}

// String returns the upper-case display name, e.g. "ASTAR".
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Bidirectional reports whether s searches from both ends.
func (s Strategy) Bidirectional() bool {
	return s == StrategyBidirectionalBFS || s == StrategyBidirectionalAStar
}

func (s Strategy) valid() bool {
	return s >= 0 && int(s) < len(strategyNames)
}

// ParseStrategy accepts, in any letter case, the short method names
// bfs, dfs, gbfs, astar, cus1 and cus2, and the display names returned by
// String with spaces, dashes or underscores between words.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.NewReplacer("-", " ", "_", " ", "*", "STAR").Replace(key)
	switch key {
	case "CUS1":
		return StrategyBidirectionalBFS, nil
	case "CUS2":
		return StrategyBidirectionalAStar, nil
	case "A STAR":
		return StrategyAStar, nil
	}
	for i, n := range strategyNames {
		if key == n {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Run dispatches to the algorithm selected by s.
func Run(s Strategy, p problem.Problem, opts ...Option) (*Result, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
	return strategyFuncs[s](p, opts...)
}
