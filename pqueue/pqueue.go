// Package pqueue provides the cost-ordered frontier used by greedy best-first,
// A* and bidirectional A* search.
//
// Queue is a binary heap of search nodes keyed by a caller-supplied scoring
// function, with an auxiliary index by state so membership, score lookup and
// deletion of a given state cost O(1), O(1) and O(log n).
//
// Ordering: entries pop by (score, state, insertion sequence) ascending.
// Ties on score therefore resolve to the lexicographically smaller cell,
// which keeps paths and explored counts reproducible.
//
// A state is held at most once. Pushing a node whose state is already queued
// replaces the older entry.
package pqueue

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/ToanNguyenSwinAdventure/robotnav/grid"
	"github.com/ToanNguyenSwinAdventure/robotnav/node"
)

// Sentinel errors. Both signal a caller bug in package search.
var (
	// ErrEmptyQueue is returned by Pop and Peek on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: pop from empty queue")
	// ErrKeyNotFound is returned by Score and Remove for a state not in the queue.
	ErrKeyNotFound = errors.New("pqueue: key not in queue")
)

// Order selects whether the smallest or the largest score pops first.
type Order int

const (
	// Min pops the smallest score first.
	Min Order = iota
	// Max pops the largest score first.
	Max
)

// String returns "min" or "max".
func (o Order) String() string {
	if o == Max {
		return "max"
	}
	return "min"
}

type item struct {
	node  *node.Node
	key   float64 // score, negated for Max
	seq   uint64
	index int
}

type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.node.State != b.node.State {
		return a.node.State.Less(b.node.State)
	}
	return a.seq < b.seq
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Queue is a priority queue of nodes. The zero value is not usable; call New.
type Queue struct {
	order Order
	f     func(*node.Node) float64
	heap  itemHeap
	index map[grid.Cell]*item
	seq   uint64
}

// New returns an empty queue ordered by f.
func New(order Order, f func(*node.Node) float64) *Queue {
	return &Queue{
		order: order,
		f:     f,
		index: make(map[grid.Cell]*item),
	}
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return len(q.heap) }

// Push inserts n keyed by f(n). O(log n).
func (q *Queue) Push(n *node.Node) {
	if old, ok := q.index[n.State]; ok {
		heap.Remove(&q.heap, old.index)
	}
	key := q.f(n)
	if q.order == Max {
		key = -key
	}
	it := &item{node: n, key: key, seq: q.seq}
	q.seq++
	heap.Push(&q.heap, it)
	q.index[n.State] = it
}

// Pop removes and returns the node with the best key.
func (q *Queue) Pop() (*node.Node, error) {
	if len(q.heap) == 0 {
		return nil, ErrEmptyQueue
	}
	it := heap.Pop(&q.heap).(*item)
	delete(q.index, it.node.State)
	return it.node, nil
}

// Peek returns the node Pop would return, without removing it.
func (q *Queue) Peek() (*node.Node, error) {
	if len(q.heap) == 0 {
		return nil, ErrEmptyQueue
	}
	return q.heap[0].node, nil
}

// PeekScore returns the score of the node Pop would return.
func (q *Queue) PeekScore() (float64, error) {
	if len(q.heap) == 0 {
		return 0, ErrEmptyQueue
	}
	return q.score(q.heap[0]), nil
}

// Contains reports whether a node with state s is queued.
func (q *Queue) Contains(s grid.Cell) bool {
	_, ok := q.index[s]
	return ok
}

// Get returns the queued node for s.
func (q *Queue) Get(s grid.Cell) (*node.Node, bool) {
	it, ok := q.index[s]
	if !ok {
		return nil, false
	}
	return it.node, true
}

// Score returns the score recorded for s when it was pushed.
func (q *Queue) Score(s grid.Cell) (float64, error) {
	it, ok := q.index[s]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, s)
	}
	return q.score(it), nil
}

// Remove deletes the entry for s. O(log n).
func (q *Queue) Remove(s grid.Cell) error {
	it, ok := q.index[s]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, s)
	}
	heap.Remove(&q.heap, it.index)
	delete(q.index, s)
	return nil
}

// Nodes returns a snapshot of the queued nodes in pop order.
func (q *Queue) Nodes() []*node.Node {
	cp := make(itemHeap, len(q.heap))
	copy(cp, q.heap)
	// pop from a detached copy without disturbing the live indices
	items := make([]item, len(cp))
	for i, it := range cp {
		items[i] = *it
		cp[i] = &items[i]
	}
	out := make([]*node.Node, 0, len(cp))
	for cp.Len() > 0 {
		out = append(out, heap.Pop(&cp).(*item).node)
	}
	return out
}

func (q *Queue) score(it *item) float64 {
	if q.order == Max {
		return -it.key
	}
	return it.key
}
