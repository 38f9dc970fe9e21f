// Package node implements the search-tree node shared by every algorithm.
//
// A Node records a state together with how it was reached: its parent, the
// action taken from the parent, the accumulated path cost and the depth.
// Nodes are never mutated after construction. Two nodes are Equal when their
// states are equal, whatever their ancestry or cost; frontier and explored
// bookkeeping in package search is keyed by state for that reason.
package node

import (
	"fmt"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/problem"
)

// Node is one vertex of the search tree.
type Node struct {
	State    grid.Cell
	Parent   *Node
	Action   grid.Action // empty for a root
	PathCost float64
	Depth    int
}

// New returns a root node for state.
func New(state grid.Cell) *Node {
	return &Node{State: state}
}

// ChildNode applies a to n's state and returns the resulting child.
func (n *Node) ChildNode(p problem.Problem, a grid.Action) *Node {
	next := p.Result(n.State, a)
	return &Node{
		State:    next,
		Parent:   n,
		Action:   a,
		PathCost: p.PathCost(n.PathCost, n.State, a, next),
		Depth:    n.Depth + 1,
	}
}

// Expand returns one child per action in p.Actions, in that order.
func (n *Node) Expand(p problem.Problem) []*Node {
	actions := p.Actions(n.State)
	children := make([]*Node, 0, len(actions))
	for _, a := range actions {
		children = append(children, n.ChildNode(p, a))
	}
	return children
}

// Path returns the nodes from the root to n.
func (n *Node) Path() []*Node {
	path := make([]*Node, 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Solution returns the actions leading from the root to n.
func (n *Node) Solution() []grid.Action {
	path := n.Path()
	out := make([]grid.Action, 0, len(path)-1)
	for _, p := range path[1:] {
		out = append(out, p.Action)
	}
	return out
}

// Equal compares by state only.
func (n *Node) Equal(o *Node) bool {
	return o != nil && n.State == o.State
}

// Less orders nodes by state.
func (n *Node) Less(o *Node) bool {
	return n.State.Less(o.State)
}

// String renders the node as "<Node (row,col)>".
func (n *Node) String() string {
	return fmt.Sprintf("<Node %v>", n.State)
}

// States maps a node sequence to its states.
func States(path []*Node) []grid.Cell {
	if path == nil {
		return nil
	}
	out := make([]grid.Cell, len(path))
	for i, n := range path {
		out[i] = n.State
	}
	return out
}
