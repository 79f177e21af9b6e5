package widget

import (
	"errors"
	"fmt"

	"github.com/tapframe/tapframe/pkg/layout"
)

// ErrResultMismatch reports a result buffer whose length does not match
// the subtree it is being committed to. Nothing is written when it is
// returned.
var ErrResultMismatch = errors.New("widget: result buffer does not match subtree")

// Apply commits a layout result buffer onto the subtree rooted at root,
// writing each entry's rectangle into the corresponding widget's bounds
// and recomputing relative bounds to preserve the tree invariant.
//
// The buffer must have been produced for the same subtree: entries are
// consumed in the identical canonical pre-order the engines emit
// ([layout.Preorder]), entry 0 absolute, the rest parent-relative. The
// commit either applies fully or not at all.
func Apply(t *Tree, root int, results []layout.Result) error {
	order := layout.Preorder(t, root)
	if len(results) != len(order) {
		return fmt.Errorf("%w: %d entries for %d nodes", ErrResultMismatch, len(results), len(order))
	}

	// Pre-order guarantees a parent's absolute bounds are final before
	// any of its children are translated against them.
	for i, idx := range order {
		entry := results[i].Rect
		n := &t.nodes[idx]
		if i == 0 {
			n.Bounds = entry
			if n.parent != None {
				p := t.nodes[n.parent]
				n.Relative = entry.Translate(-p.Bounds.X, -p.Bounds.Y)
			} else {
				n.Relative = entry
			}
			continue
		}
		p := t.nodes[n.parent]
		n.Relative = entry
		n.Bounds = entry.Translate(p.Bounds.X, p.Bounds.Y)
	}
	return nil
}
