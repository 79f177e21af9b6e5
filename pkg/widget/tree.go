// Package widget provides an arena-backed widget tree and the adapter
// that commits layout result buffers onto stored bounds.
//
// Nodes reference each other by arena index rather than pointer:
// ownership flows strictly parent-to-child through the children list,
// and the parent back-reference exists only for upward traversal. The
// tree implements [layout.Tree], so engines read it directly.
package widget

import (
	"github.com/google/uuid"

	"github.com/tapframe/tapframe/pkg/layout"
)

// None marks the absence of a node reference (no parent, no such node).
const None = -1

// Node is one widget in a Tree arena.
type Node struct {
	// ID identifies the widget; generated when the caller omits one.
	ID string

	// Bounds are the widget's absolute pixel bounds.
	Bounds layout.Rect

	// Relative are the bounds translated into the parent's origin.
	// Invariant: Relative always equals Bounds translated by the
	// negated parent origin; every write path preserves this.
	Relative layout.Rect

	parent   int
	children []int
}

// Parent returns the arena index of the node's parent, or None.
func (n *Node) Parent() int {
	return n.parent
}

// Tree owns a hierarchy of widgets in a growable arena. It is not safe
// for concurrent mutation; the caller excludes concurrent writes during
// a layout pass (single-owner discipline, no internal locking).
type Tree struct {
	nodes []Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of arena slots, including detached ones.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node at the given arena index.
func (t *Tree) Node(i int) *Node {
	return &t.nodes[i]
}

// Add appends a widget with the given absolute bounds under parent and
// returns its arena index. Pass None to create a root. An empty id is
// replaced with a generated UUID.
func (t *Tree) Add(parent int, id string, bounds layout.Rect) int {
	if id == "" {
		id = uuid.NewString()
	}
	idx := len(t.nodes)
	n := Node{ID: id, Bounds: bounds, Relative: bounds, parent: None}
	if parent != None {
		p := &t.nodes[parent]
		n.parent = parent
		n.Relative = bounds.Translate(-p.Bounds.X, -p.Bounds.Y)
		p.children = append(p.children, idx)
	}
	t.nodes = append(t.nodes, n)
	return idx
}

// SetBounds moves a widget to new absolute bounds, recomputing its
// relative bounds and carrying descendants along so their relative
// bounds stay unchanged.
func (t *Tree) SetBounds(node int, bounds layout.Rect) {
	n := &t.nodes[node]
	n.Bounds = bounds
	if n.parent != None {
		p := t.nodes[n.parent]
		n.Relative = bounds.Translate(-p.Bounds.X, -p.Bounds.Y)
	} else {
		n.Relative = bounds
	}
	t.reanchor(node)
}

// reanchor re-derives descendants' absolute bounds from their relative
// bounds after an ancestor moved.
func (t *Tree) reanchor(node int) {
	origin := t.nodes[node].Bounds
	for _, c := range t.nodes[node].children {
		child := &t.nodes[c]
		child.Bounds = child.Relative.Translate(origin.X, origin.Y)
		t.reanchor(c)
	}
}

// Detach removes a node from its parent's child list. The subtree's
// arena slots are not reclaimed; trees are cheap enough to rebuild per
// screen, so there is no free list.
func (t *Tree) Detach(node int) bool {
	n := &t.nodes[node]
	if n.parent == None {
		return false
	}
	p := &t.nodes[n.parent]
	for i, c := range p.children {
		if c == node {
			p.children = append(p.children[:i], p.children[i+1:]...)
			n.parent = None
			n.Relative = n.Bounds
			return true
		}
	}
	return false
}

// Find returns the arena index of the first node with the given ID in
// the subtree rooted at root, or None.
func (t *Tree) Find(root int, id string) int {
	if t.nodes[root].ID == id {
		return root
	}
	for _, c := range t.nodes[root].children {
		if found := t.Find(c, id); found != None {
			return found
		}
	}
	return None
}

// HitTest returns the deepest node in the subtree whose absolute bounds
// contain the point, or None. Children are tested in reverse declared
// order so later siblings win, matching paint order.
func (t *Tree) HitTest(root int, x, y float64) int {
	if !t.nodes[root].Bounds.Contains(x, y) {
		return None
	}
	children := t.nodes[root].children
	for i := len(children) - 1; i >= 0; i-- {
		if hit := t.HitTest(children[i], x, y); hit != None {
			return hit
		}
	}
	return root
}

// layout.Tree implementation. Engines only read through these.

var _ layout.Tree = (*Tree)(nil)

// ID returns the widget identifier at the given index.
func (t *Tree) ID(node int) string {
	return t.nodes[node].ID
}

// Relative returns the bounds relative to the parent's origin.
func (t *Tree) Relative(node int) layout.Rect {
	return t.nodes[node].Relative
}

// Children returns the ordered child indices of the node.
func (t *Tree) Children(node int) []int {
	return t.nodes[node].children
}
