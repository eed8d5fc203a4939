package pathfind

import "github.com/ransoing/AoC24/xyz"

// node is one arena entry. parent is the index of the previous step;
// index 0 is the origin and is its own terminator.
type node[K comparable] struct {
	step   Step[K]
	parent int
	depth  int
}

// arena stores every step any candidate has taken during one search.
// Extending a path appends a single node, so no path prefix is ever copied.
type arena[K comparable] struct {
	nodes []node[K]
}

func newArena[K comparable](origin xyz.Vec) *arena[K] {
	a := &arena[K]{nodes: make([]node[K], 1, 1024)}
	a.nodes[0] = node[K]{step: Step[K]{Point: origin}}
	return a
}

// push appends s as a child of parent and returns its index.
func (a *arena[K]) push(s Step[K], parent int) int {
	a.nodes = append(a.nodes, node[K]{step: s, parent: parent, depth: a.nodes[parent].depth + 1})
	return len(a.nodes) - 1
}

// History is a read-only view of one candidate path, from the origin
// (exclusive) to its latest step. It is cheap to copy and stays valid after
// the search returns. The zero History is empty and positioned at (0,0,0).
type History[K comparable] struct {
	a   *arena[K]
	tip int
}

// Len returns the number of steps taken since the origin.
func (h History[K]) Len() int {
	if h.a == nil {
		return 0
	}
	return h.a.nodes[h.tip].depth
}

// Origin returns the point the search started from.
func (h History[K]) Origin() xyz.Vec {
	if h.a == nil {
		return xyz.Vec{}
	}
	return h.a.nodes[0].step.Point
}

// Position returns the point of the latest step, or the origin when no step
// has been taken.
func (h History[K]) Position() xyz.Vec {
	if h.a == nil {
		return xyz.Vec{}
	}
	return h.a.nodes[h.tip].step.Point
}

// Last returns the latest step. ok is false when the history is empty.
func (h History[K]) Last() (Step[K], bool) {
	return h.Back(0)
}

// Back returns the step n positions before the latest one; Back(0) is the
// latest. ok is false when fewer than n+1 steps exist. O(n).
func (h History[K]) Back(n int) (Step[K], bool) {
	if n < 0 || n >= h.Len() {
		return Step[K]{}, false
	}
	i := h.tip
	for ; n > 0; n-- {
		i = h.a.nodes[i].parent
	}
	return h.a.nodes[i].step, true
}

// Heading returns the direction of the latest step, or the zero vector when
// no step has been taken.
func (h History[K]) Heading() xyz.Vec {
	if h.Len() == 0 {
		return xyz.Vec{}
	}
	prev := h.a.nodes[h.a.nodes[h.tip].parent].step.Point
	return h.Position().Sub(prev)
}

// Steps materializes the history in order, origin excluded. O(Len).
func (h History[K]) Steps() []Step[K] {
	n := h.Len()
	out := make([]Step[K], n)
	for i := h.tip; n > 0; i = h.a.nodes[i].parent {
		n--
		out[n] = h.a.nodes[i].step
	}
	return out
}
