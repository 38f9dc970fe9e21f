package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/node"
)

// listFrontier is the open set of the uninformed searches. Membership is by state.
type listFrontier interface {
	push(n *node.Node)
	pop() *node.Node
	empty() bool
	contains(s grid.Cell) bool
}

// fifo is the breadth-first frontier.
type fifo struct {
	q       *queue.Queue[*node.Node]
	members mapset.Set[grid.Cell]
}

func newFIFO() *fifo {
	return &fifo{q: queue.New[*node.Node](), members: mapset.New[grid.Cell]()}
}

func (f *fifo) push(n *node.Node) {
	f.q.Enqueue(n)
	f.members.Put(n.State)
}

func (f *fifo) pop() *node.Node {
	n := f.q.Dequeue()
	f.members.Remove(n.State)
	return n
}

func (f *fifo) empty() bool { return f.q.Empty() }

func (f *fifo) contains(s grid.Cell) bool { return f.members.Has(s) }

// lifo is the depth-first frontier.
type lifo struct {
	s       *stack.Stack[*node.Node]
	members mapset.Set[grid.Cell]
}

func newLIFO() *lifo {
	return &lifo{s: stack.New[*node.Node](), members: mapset.New[grid.Cell]()}
}

func (l *lifo) push(n *node.Node) {
	l.s.Push(n)
	l.members.Put(n.State)
}

func (l *lifo) pop() *node.Node {
	n := l.s.Pop()
	l.members.Remove(n.State)
	return n
}

func (l *lifo) empty() bool { return l.s.Size() == 0 }

func (l *lifo) contains(s grid.Cell) bool { return l.members.Has(s) }

// exploredSet records expanded states, keeping their expansion order for observers.
type exploredSet struct {
	set   mapset.Set[grid.Cell]
	order []grid.Cell
}

func newExploredSet() *exploredSet {
	return &exploredSet{set: mapset.New[grid.Cell]()}
}

// add reports whether s was newly recorded.
func (e *exploredSet) add(s grid.Cell) bool {
	if e.set.Has(s) {
		return false
	}
	e.set.Put(s)
	e.order = append(e.order, s)
	return true
}

func (e *exploredSet) has(s grid.Cell) bool { return e.set.Has(s) }
