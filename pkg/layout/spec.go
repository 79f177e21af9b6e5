package layout

import "fmt"

// Strategy selects the engine used to arrange a container's children.
// The set is closed; engines are registered in a fixed dispatch table.
type Strategy uint8

const (
	// Absolute places each child at its literal pixel bounds or at a
	// fractional override resolved against the parent's resolved size.
	Absolute Strategy = iota

	// FlexibleAxis distributes main-axis space among children by growth
	// weight and aligns them on the cross axis.
	FlexibleAxis
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Absolute:
		return "absolute"
	case FlexibleAxis:
		return "flexible-axis"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Direction specifies the main axis for FlexibleAxis layout.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are packed along the main axis when
// leftover space remains undistributed.
type Justify uint8

const (
	JustifyStart  Justify = iota // Pack at start
	JustifyCenter                // Center children
	JustifyEnd                   // Pack at end
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignCenter               // Center on cross axis
	AlignEnd                  // Align to end of cross axis
	AlignStretch              // Stretch to fill cross axis
)

// OverflowPolicy governs FlexibleAxis behavior when the main axis space
// is negative beyond what growth weights can absorb.
type OverflowPolicy uint8

const (
	// OverflowError surfaces ErrOverflow so the caller can choose a
	// remediation policy (truncate, scroll, relaxed re-layout).
	OverflowError OverflowPolicy = iota

	// OverflowShrink clamps proportional shrink at a zero floor and
	// continues; weightless children shrink proportionally to their
	// base sizes.
	OverflowShrink
)

// Spec describes how one widget's children should be arranged. It is
// immutable during a layout pass and owns its strategy payload
// exclusively. Exactly one payload must be populated, matching the
// strategy tag.
type Spec struct {
	Strategy Strategy

	// Padding is a uniform gap applied on all four sides between the
	// container and its children.
	Padding float64

	// ClipOverflow controls whether result entries extending outside
	// their parent's resolved rectangle are flagged as clipped.
	ClipOverflow bool

	Absolute *AbsoluteSpec
	Flex     *FlexSpec
}

// AbsoluteSpec is the payload for the Absolute strategy.
type AbsoluteSpec struct {
	// Fractions holds per-widget fractional bounds overrides, keyed by
	// widget ID. Widgets without an entry use their literal bounds.
	Fractions map[string]FracRect
}

// FlexSpec is the payload for the FlexibleAxis strategy.
type FlexSpec struct {
	Direction Direction

	// Weights holds per-child growth weights in declared order. Missing
	// entries are treated as zero; a zero-weight child never grows or
	// shrinks beyond its base size.
	Weights []float64

	// Gap is the space between adjacent children on the main axis.
	Gap float64

	Justify  Justify
	Align    Align
	Overflow OverflowPolicy
}

// NewAbsolute returns an Absolute spec with an empty override table.
func NewAbsolute() *Spec {
	return &Spec{Strategy: Absolute, Absolute: &AbsoluteSpec{Fractions: map[string]FracRect{}}}
}

// NewFlex returns a FlexibleAxis spec for the given direction.
func NewFlex(d Direction) *Spec {
	return &Spec{Strategy: FlexibleAxis, Flex: &FlexSpec{Direction: d, Align: AlignStart}}
}

// weightAt returns the growth weight for the child at declared index i.
func (f *FlexSpec) weightAt(i int) float64 {
	if i < 0 || i >= len(f.Weights) {
		return 0
	}
	return f.Weights[i]
}

// Validate checks the spec for tag/payload mismatches and out-of-range
// parameters. Engines call it before writing any geometry.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidArgument)
	}
	if s.Padding < 0 {
		return fmt.Errorf("%w: negative padding %v", ErrInvalidArgument, s.Padding)
	}
	switch s.Strategy {
	case Absolute:
		if s.Absolute == nil {
			return fmt.Errorf("%w: absolute spec missing payload", ErrInvalidArgument)
		}
		if s.Flex != nil {
			return fmt.Errorf("%w: absolute spec carries a flex payload", ErrInvalidArgument)
		}
		for id, fr := range s.Absolute.Fractions {
			if err := fr.validate(); err != nil {
				return fmt.Errorf("%w (widget %q)", err, id)
			}
		}
	case FlexibleAxis:
		if s.Flex == nil {
			return fmt.Errorf("%w: flexible-axis spec missing payload", ErrInvalidArgument)
		}
		if s.Absolute != nil {
			return fmt.Errorf("%w: flexible-axis spec carries an absolute payload", ErrInvalidArgument)
		}
		if s.Flex.Gap < 0 {
			return fmt.Errorf("%w: negative gap %v", ErrInvalidArgument, s.Flex.Gap)
		}
		for i, w := range s.Flex.Weights {
			if w < 0 {
				return fmt.Errorf("%w: negative weight %v at child %d", ErrInvalidArgument, w, i)
			}
		}
	default:
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, s.Strategy)
	}
	return nil
}
