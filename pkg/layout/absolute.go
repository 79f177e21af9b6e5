package layout

// absoluteEngine positions each child either at its literal pixel
// bounds or at a rectangle computed by resolving fractional overrides
// against the parent's resolved size, offset by uniform padding.
type absoluteEngine struct{}

func (absoluteEngine) Calculate(t Tree, root int, spec *Spec, ctx Context, results []Result) (int, error) {
	order, err := validateCall(t, root, spec, Absolute, results)
	if err != nil {
		return 0, err
	}

	fractions := spec.Absolute.Fractions
	pad := spec.Padding

	// Root resolves to the available rectangle; a fractional override
	// on the root itself resolves against the context reference
	// dimensions instead of a parent.
	rootRect := ctx.Available
	if fr, ok := fractions[t.ID(root)]; ok && !fr.IsZero() {
		refW, refH := ctx.refSize()
		rootRect = Rect{
			X:      ctx.Available.X + fr.X.Resolve(refW, 0),
			Y:      ctx.Available.Y + fr.Y.Resolve(refH, 0),
			Width:  fr.W.Resolve(refW, ctx.Available.Width),
			Height: fr.H.Resolve(refH, ctx.Available.Height),
		}
	}

	i := 0
	results[i] = Result{Rect: ctx.emit(rootRect, true)}
	i++

	// Geometry is computed in logical units; scale is applied at
	// emission only, so clip checks are scale-invariant.
	var place func(node int, parentW, parentH float64)
	place = func(node int, parentW, parentH float64) {
		lit := t.Relative(node)
		r := Rect{
			X:      pad + lit.X,
			Y:      pad + lit.Y,
			Width:  lit.Width,
			Height: lit.Height,
		}
		if fr, ok := fractions[t.ID(node)]; ok {
			// Fractional components take precedence over literal
			// bounds per component; unset components keep the literal
			// value.
			r.X = pad + fr.X.Resolve(parentW, lit.X)
			r.Y = pad + fr.Y.Resolve(parentH, lit.Y)
			r.Width = fr.W.Resolve(parentW, lit.Width)
			r.Height = fr.H.Resolve(parentH, lit.Height)
		}

		results[i] = Result{
			Rect:    ctx.emit(r, false),
			Clipped: clipFlag(spec.ClipOverflow, r, parentW, parentH),
		}
		i++

		for _, c := range t.Children(node) {
			place(c, r.Width, r.Height)
		}
	}

	for _, c := range t.Children(root) {
		place(c, rootRect.Width, rootRect.Height)
	}

	return len(order), nil
}

func (absoluteEngine) MinSize(t Tree, root int, spec *Spec) (Size, error) {
	if _, err := validateCall(t, root, spec, Absolute, nil); err != nil {
		return Size{}, err
	}

	// Depth-first aggregation of the furthest descendant edge, with
	// relative offsets accumulated into root coordinates. A leaf
	// contributes only its own edge.
	var maxX, maxY float64
	seen := false
	var walk func(n int, offX, offY float64)
	walk = func(n int, offX, offY float64) {
		for _, c := range t.Children(n) {
			seen = true
			rel := t.Relative(c)
			if edge := offX + rel.X + rel.Width; edge > maxX {
				maxX = edge
			}
			if edge := offY + rel.Y + rel.Height; edge > maxY {
				maxY = edge
			}
			walk(c, offX+rel.X, offY+rel.Y)
		}
	}
	walk(root, 0, 0)

	if !seen {
		// A childless subtree constrains nothing.
		return Size{}, nil
	}
	return Size{Width: maxX + spec.Padding, Height: maxY + spec.Padding}, nil
}
