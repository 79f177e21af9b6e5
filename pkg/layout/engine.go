package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports malformed or undersized inputs to an
	// engine call: absent root, wrong strategy tag, undersized results
	// buffer, or an invalid spec. It is always detected before any
	// geometry is written.
	ErrInvalidArgument = errors.New("layout: invalid argument")

	// ErrOverflow reports that FlexibleAxis main-axis leftover space is
	// negative beyond what growth weights can absorb. The caller
	// chooses the remediation policy.
	ErrOverflow = errors.New("layout: main-axis overflow")
)

// Engine computes geometry for one layout strategy. Implementations
// are stateless; all per-pass inputs arrive through the call.
type Engine interface {
	// Calculate lays out the subtree rooted at root into results,
	// indexed by the canonical pre-order. It returns the number of
	// entries written and never mutates the tree.
	Calculate(t Tree, root int, spec *Spec, ctx Context, results []Result) (int, error)

	// MinSize computes, independent of any context, the smallest
	// width/height that would contain every descendant without
	// clipping.
	MinSize(t Tree, root int, spec *Spec) (Size, error)
}

// engines is the closed dispatch table keyed by strategy tag.
var engines = map[Strategy]Engine{
	Absolute:     absoluteEngine{},
	FlexibleAxis: flexEngine{},
}

// EngineFor returns the engine registered for the given strategy.
func EngineFor(s Strategy) (Engine, error) {
	e, ok := engines[s]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, s)
	}
	return e, nil
}

// Calculate dispatches to the engine selected by the spec's strategy
// tag and lays out the subtree rooted at root into results.
func Calculate(t Tree, root int, spec *Spec, ctx Context, results []Result) (int, error) {
	if spec == nil {
		return 0, fmt.Errorf("%w: nil spec", ErrInvalidArgument)
	}
	e, err := EngineFor(spec.Strategy)
	if err != nil {
		return 0, err
	}
	return e.Calculate(t, root, spec, ctx, results)
}

// MinSize dispatches to the engine selected by the spec's strategy tag.
func MinSize(t Tree, root int, spec *Spec) (Size, error) {
	if spec == nil {
		return Size{}, fmt.Errorf("%w: nil spec", ErrInvalidArgument)
	}
	e, err := EngineFor(spec.Strategy)
	if err != nil {
		return Size{}, err
	}
	return e.MinSize(t, root, spec)
}

// validateCall performs the shared precondition checks for engine
// entry points and derives the canonical pre-order. A nil results
// slice skips the buffer size check (used by MinSize).
func validateCall(t Tree, root int, spec *Spec, want Strategy, results []Result) ([]int, error) {
	if t == nil || root < 0 {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidArgument)
	}
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", ErrInvalidArgument)
	}
	if spec.Strategy != want {
		return nil, fmt.Errorf("%w: spec strategy %s does not match engine %s",
			ErrInvalidArgument, spec.Strategy, want)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	order := Preorder(t, root)
	if results != nil && len(results) < len(order) {
		return nil, fmt.Errorf("%w: results buffer has %d entries, need %d",
			ErrInvalidArgument, len(results), len(order))
	}
	return order, nil
}

// clipFlag reports whether a parent-relative rectangle extends outside
// a parent of the given extent on any edge, honoring the spec's clip
// policy. When clipping is off the flag is always false, even if the
// geometry overflows.
func clipFlag(clip bool, r Rect, parentW, parentH float64) bool {
	if !clip {
		return false
	}
	return r.X < 0 || r.Y < 0 || r.Right() > parentW || r.Bottom() > parentH
}
