package layout

// Tree provides read access to a widget hierarchy during layout. The
// engine only ever reads through this interface; writes happen in the
// adapter. Nodes are arena indices rather than pointers, so tree
// mutation between passes cannot leave the engine holding dangling
// references.
type Tree interface {
	// ID returns the widget identifier for the node.
	ID(node int) string

	// Relative returns the widget's literal bounds relative to its
	// parent's origin. Extents match the widget's absolute bounds.
	Relative(node int) Rect

	// Children returns the ordered child indices of the node.
	Children(node int) []int
}

// Result is one computed layout entry: a rectangle in pixel space and
// a clip flag. Entry 0 of a result buffer is always the subtree root
// in absolute coordinates; every other entry is expressed in its
// parent's coordinate space until the adapter commits it.
type Result struct {
	Rect    Rect
	Clipped bool
}

// Preorder returns the canonical pre-order traversal of the subtree
// rooted at root: a node before any of its descendants, children in
// declared order. Both Calculate and the widget adapter index result
// buffers by this exact order; it is a protocol, not an implementation
// detail.
func Preorder(t Tree, root int) []int {
	order := make([]int, 0, 16)
	var walk func(n int)
	walk = func(n int) {
		order = append(order, n)
		for _, c := range t.Children(n) {
			walk(c)
		}
	}
	walk(root)
	return order
}

// CountNodes returns the number of nodes in the subtree rooted at root.
func CountNodes(t Tree, root int) int {
	count := 1
	for _, c := range t.Children(root) {
		count += CountNodes(t, c)
	}
	return count
}
