package layout

import "fmt"

// Frac is an optional fraction of a parent dimension, in [0, 1].
// The zero value is unset, meaning the widget's literal pixel bounds
// are used for that component instead.
type Frac struct {
	amount float64
	set    bool
}

// Fraction returns a set Frac with the given value.
func Fraction(v float64) Frac {
	return Frac{amount: v, set: true}
}

// IsSet reports whether the fraction carries a value.
func (f Frac) IsSet() bool {
	return f.set
}

// Value returns the fraction, or 0 if unset.
func (f Frac) Value() float64 {
	return f.amount
}

// Resolve computes the pixel value against the given extent.
// An unset Frac returns the fallback (the literal bounds component).
func (f Frac) Resolve(extent, fallback float64) float64 {
	if !f.set {
		return fallback
	}
	return f.amount * extent
}

func (f Frac) validate(name string) error {
	if f.set && (f.amount < 0 || f.amount > 1) {
		return fmt.Errorf("%w: fraction %s=%v outside [0,1]", ErrInvalidArgument, name, f.amount)
	}
	return nil
}

// FracRect is a per-widget fractional bounds override. Each component
// is independently optional; unset components fall back to the widget's
// literal bounds.
type FracRect struct {
	X, Y, W, H Frac
}

// FracBounds returns a FracRect with all four components set.
func FracBounds(x, y, w, h float64) FracRect {
	return FracRect{X: Fraction(x), Y: Fraction(y), W: Fraction(w), H: Fraction(h)}
}

// IsZero reports whether no component is set.
func (fr FracRect) IsZero() bool {
	return !fr.X.IsSet() && !fr.Y.IsSet() && !fr.W.IsSet() && !fr.H.IsSet()
}

func (fr FracRect) validate() error {
	if err := fr.X.validate("x"); err != nil {
		return err
	}
	if err := fr.Y.validate("y"); err != nil {
		return err
	}
	if err := fr.W.validate("w"); err != nil {
		return err
	}
	return fr.H.validate("h")
}
