// Package style resolves declarative stylesheet documents into layout
// specifications. It is the opaque producer side of the layout
// boundary: the engine consumes whatever specs resolution yields and
// never sees the stylesheet format.
//
// Sheets are written in TOML or in comment-tolerant JSON (JSONC).
package style

import (
	"fmt"
	"strings"

	"github.com/tapframe/tapframe/pkg/layout"
)

// Sheet is a collection of named layout classes.
type Sheet struct {
	Classes map[string]Class `toml:"class" json:"classes"`
}

// Class is one named bundle of layout parameters. Strategy-specific
// fields are ignored when they do not apply to the declared strategy.
type Class struct {
	// Strategy is "absolute" (default) or "flex".
	Strategy string  `toml:"strategy" json:"strategy"`
	Padding  float64 `toml:"padding" json:"padding"`
	Clip     bool    `toml:"clip" json:"clip"`

	// Flexible-axis fields.
	Direction string    `toml:"direction" json:"direction"`
	Gap       float64   `toml:"gap" json:"gap"`
	Weights   []float64 `toml:"weights" json:"weights"`
	Justify   string    `toml:"justify" json:"justify"`
	Align     string    `toml:"align" json:"align"`
	Overflow  string    `toml:"overflow" json:"overflow"`

	// Absolute fields: fractional overrides keyed by widget ID. Each
	// override sets any of x/y/w/h as fractions in [0,1]; omitted
	// components keep the widget's literal bounds.
	Fractions map[string]Override `toml:"fractions" json:"fractions"`
}

// Override is a partial fractional bounds override.
type Override struct {
	X *float64 `toml:"x" json:"x"`
	Y *float64 `toml:"y" json:"y"`
	W *float64 `toml:"w" json:"w"`
	H *float64 `toml:"h" json:"h"`
}

// Resolve maps a named class onto a validated layout spec.
func (s *Sheet) Resolve(name string) (*layout.Spec, error) {
	c, ok := s.Classes[name]
	if !ok {
		return nil, fmt.Errorf("style: unknown class %q", name)
	}
	return c.Spec()
}

// Spec builds the layout spec described by the class.
func (c Class) Spec() (*layout.Spec, error) {
	strategy, err := parseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}

	spec := &layout.Spec{
		Strategy:     strategy,
		Padding:      c.Padding,
		ClipOverflow: c.Clip,
	}

	switch strategy {
	case layout.Absolute:
		payload := &layout.AbsoluteSpec{Fractions: make(map[string]layout.FracRect, len(c.Fractions))}
		for id, o := range c.Fractions {
			payload.Fractions[id] = o.fracRect()
		}
		spec.Absolute = payload

	case layout.FlexibleAxis:
		direction, err := parseDirection(c.Direction)
		if err != nil {
			return nil, err
		}
		justify, err := parseJustify(c.Justify)
		if err != nil {
			return nil, err
		}
		align, err := parseAlign(c.Align)
		if err != nil {
			return nil, err
		}
		overflow, err := parseOverflow(c.Overflow)
		if err != nil {
			return nil, err
		}
		spec.Flex = &layout.FlexSpec{
			Direction: direction,
			Weights:   c.Weights,
			Gap:       c.Gap,
			Justify:   justify,
			Align:     align,
			Overflow:  overflow,
		}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (o Override) fracRect() layout.FracRect {
	var fr layout.FracRect
	if o.X != nil {
		fr.X = layout.Fraction(*o.X)
	}
	if o.Y != nil {
		fr.Y = layout.Fraction(*o.Y)
	}
	if o.W != nil {
		fr.W = layout.Fraction(*o.W)
	}
	if o.H != nil {
		fr.H = layout.Fraction(*o.H)
	}
	return fr
}

func parseStrategy(s string) (layout.Strategy, error) {
	switch strings.ToLower(s) {
	case "", "absolute":
		return layout.Absolute, nil
	case "flex", "flexible-axis":
		return layout.FlexibleAxis, nil
	default:
		return 0, fmt.Errorf("style: unknown strategy %q", s)
	}
}

func parseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(s) {
	case "", "row":
		return layout.Row, nil
	case "column", "col":
		return layout.Column, nil
	default:
		return 0, fmt.Errorf("style: unknown direction %q", s)
	}
}

func parseJustify(s string) (layout.Justify, error) {
	switch strings.ToLower(s) {
	case "", "start":
		return layout.JustifyStart, nil
	case "center":
		return layout.JustifyCenter, nil
	case "end":
		return layout.JustifyEnd, nil
	default:
		return 0, fmt.Errorf("style: unknown justify mode %q", s)
	}
}

func parseAlign(s string) (layout.Align, error) {
	switch strings.ToLower(s) {
	case "", "start":
		return layout.AlignStart, nil
	case "center":
		return layout.AlignCenter, nil
	case "end":
		return layout.AlignEnd, nil
	case "stretch":
		return layout.AlignStretch, nil
	default:
		return 0, fmt.Errorf("style: unknown align mode %q", s)
	}
}

func parseOverflow(s string) (layout.OverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "", "error":
		return layout.OverflowError, nil
	case "shrink":
		return layout.OverflowShrink, nil
	default:
		return 0, fmt.Errorf("style: unknown overflow policy %q", s)
	}
}
