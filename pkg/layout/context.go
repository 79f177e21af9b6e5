package layout

// Transform is a rigid translation applied after geometry is computed,
// used to map layout coordinates into device or window space. Non-root
// result entries are parent-relative, so translating the root entry
// carries the whole subtree.
type Transform struct {
	OffsetX, OffsetY float64
}

// Apply returns r translated by the transform's offset.
func (t Transform) Apply(r Rect) Rect {
	return r.Translate(t.OffsetX, t.OffsetY)
}

// Context carries the per-invocation ambient parameters of a layout
// pass. It is constructed per call and not retained by the engine.
type Context struct {
	// Available is the rectangle bounding the subtree root.
	Available Rect

	// Transform, when non-nil, is applied to the root entry after
	// geometry is computed.
	Transform *Transform

	// Scale multiplies all pixel outputs uniformly. Zero is treated
	// as 1.
	Scale float64

	// RefWidth and RefHeight are the denominators used when resolving
	// the subtree root's own fractional bounds. Zero means "use the
	// available rectangle". Descendants always resolve against their
	// parent's resolved size.
	RefWidth, RefHeight float64
}

// NewContext returns a Context for the given available rectangle with
// unit scale and no transform.
func NewContext(available Rect) Context {
	return Context{Available: available, Scale: 1}
}

func (c Context) effectiveScale() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

func (c Context) refSize() (w, h float64) {
	w, h = c.RefWidth, c.RefHeight
	if w == 0 {
		w = c.Available.Width
	}
	if h == 0 {
		h = c.Available.Height
	}
	return w, h
}

// emit scales a logical rectangle into pixel output and, for the root
// entry, applies the context transform.
func (c Context) emit(r Rect, isRoot bool) Rect {
	out := r.Scale(c.effectiveScale())
	if isRoot && c.Transform != nil {
		out = c.Transform.Apply(out)
	}
	return out
}
