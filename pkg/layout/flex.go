package layout

import "fmt"

// flexEngine distributes available main-axis space among the root's
// children according to growth weights, then aligns them on the cross
// axis. Descendants below the direct children keep their literal
// relative bounds; the governing spec's clip policy still applies to
// them.
type flexEngine struct{}

// flexItem holds intermediate calculation state for one direct child.
// It is stack-allocated per layout call, never stored on nodes.
type flexItem struct {
	node      int
	baseMain  float64
	baseCross float64
	mainSize  float64
	crossSize float64
	mainPos   float64
	crossPos  float64
	weight    float64
}

func (flexEngine) Calculate(t Tree, root int, spec *Spec, ctx Context, results []Result) (int, error) {
	order, err := validateCall(t, root, spec, FlexibleAxis, results)
	if err != nil {
		return 0, err
	}

	fs := spec.Flex
	pad := spec.Padding
	isRow := fs.Direction == Row

	rootRect := ctx.Available
	children := t.Children(root)
	n := len(children)

	mainAvail := rootRect.Width - 2*pad
	crossAvail := rootRect.Height - 2*pad
	if !isRow {
		mainAvail, crossAvail = crossAvail, mainAvail
	}

	// Phase 1: base sizes from each child's own stored bounds.
	items := make([]flexItem, n)
	var baseSum, weightSum float64
	for idx, c := range children {
		b := t.Relative(c)
		item := &items[idx]
		item.node = c
		if isRow {
			item.baseMain, item.baseCross = b.Width, b.Height
		} else {
			item.baseMain, item.baseCross = b.Height, b.Width
		}
		item.weight = fs.weightAt(idx)
		baseSum += item.baseMain
		weightSum += item.weight
	}

	var gaps float64
	if n > 1 {
		gaps = fs.Gap * float64(n-1)
	}
	leftover := mainAvail - baseSum - gaps

	// Phase 2: distribute leftover space. Shares are computed from
	// cumulative weights so the emitted sizes telescope back to the
	// available extent exactly, with any remainder landing on the
	// earliest child in declared order.
	switch {
	case leftover == 0 || weightSum == 0 && leftover > 0:
		for idx := range items {
			items[idx].mainSize = items[idx].baseMain
		}
	case weightSum > 0:
		if err := distribute(items, leftover, weightSum, fs.Overflow); err != nil {
			return 0, err
		}
	default:
		// leftover < 0 with no weights to absorb it.
		if fs.Overflow == OverflowError {
			return 0, fmt.Errorf("%w: children exceed main axis by %v with no growth weights",
				ErrOverflow, -leftover)
		}
		shrinkToFit(items, baseSum, mainAvail-gaps)
	}

	// Phase 3: main-axis positions. Free space survives distribution
	// only when no child carries weight; justify packs it.
	free := mainAvail - gaps
	for idx := range items {
		free -= items[idx].mainSize
	}
	offset := pad + justifyOffset(fs.Justify, free)
	for idx := range items {
		items[idx].mainPos = offset
		offset += items[idx].mainSize + fs.Gap
	}

	// Phase 4: cross-axis size and position per child.
	for idx := range items {
		item := &items[idx]
		if fs.Align == AlignStretch {
			item.crossSize = crossAvail
			item.crossPos = pad
			continue
		}
		item.crossSize = item.baseCross
		item.crossPos = pad + alignOffset(fs.Align, crossAvail, item.crossSize)
	}

	// Phase 5: emit in pre-order, descendants at literal bounds.
	i := 0
	results[i] = Result{Rect: ctx.emit(rootRect, true)}
	i++

	var placeLiteral func(node int, parentW, parentH float64)
	placeLiteral = func(node int, parentW, parentH float64) {
		lit := t.Relative(node)
		results[i] = Result{
			Rect:    ctx.emit(lit, false),
			Clipped: clipFlag(spec.ClipOverflow, lit, parentW, parentH),
		}
		i++
		for _, c := range t.Children(node) {
			placeLiteral(c, lit.Width, lit.Height)
		}
	}

	for idx := range items {
		item := &items[idx]
		var r Rect
		if isRow {
			r = Rect{X: item.mainPos, Y: item.crossPos, Width: item.mainSize, Height: item.crossSize}
		} else {
			r = Rect{X: item.crossPos, Y: item.mainPos, Width: item.crossSize, Height: item.mainSize}
		}
		results[i] = Result{
			Rect:    ctx.emit(r, false),
			Clipped: clipFlag(spec.ClipOverflow, r, rootRect.Width, rootRect.Height),
		}
		i++
		for _, c := range t.Children(item.node) {
			placeLiteral(c, r.Width, r.Height)
		}
	}

	return len(order), nil
}

func (flexEngine) MinSize(t Tree, root int, spec *Spec) (Size, error) {
	if _, err := validateCall(t, root, spec, FlexibleAxis, nil); err != nil {
		return Size{}, err
	}

	fs := spec.Flex
	pad := spec.Padding
	isRow := fs.Direction == Row
	children := t.Children(root)

	var mainSum, crossMax float64
	for _, c := range children {
		b := t.Relative(c)
		main, cross := b.Width, b.Height
		if !isRow {
			main, cross = cross, main
		}
		mainSum += main
		if cross > crossMax {
			crossMax = cross
		}
	}
	if len(children) > 1 {
		mainSum += fs.Gap * float64(len(children)-1)
	}

	main := mainSum + 2*pad
	cross := crossMax + 2*pad
	if isRow {
		return Size{Width: main, Height: cross}, nil
	}
	return Size{Width: cross, Height: main}, nil
}

// distribute assigns main sizes as base plus a share of leftover
// proportional to weight. Shares telescope over cumulative weights so
// they sum to leftover exactly. Negative leftover is absorbed down to
// a zero floor; beyond that the overflow policy decides between
// surfacing ErrOverflow and clamping.
func distribute(items []flexItem, leftover, weightSum float64, policy OverflowPolicy) error {
	var cum, prev float64
	clamped := false
	for idx := range items {
		item := &items[idx]
		cum += item.weight
		target := leftover * cum / weightSum
		item.mainSize = item.baseMain + (target - prev)
		prev = target
		if item.mainSize < 0 {
			item.mainSize = 0
			clamped = true
		}
	}
	if clamped && policy == OverflowError {
		return fmt.Errorf("%w: growth weights cannot absorb deficit %v", ErrOverflow, -leftover)
	}
	return nil
}

// shrinkToFit scales all base sizes proportionally so they fit the
// available main extent. Used only under OverflowShrink when no child
// carries weight.
func shrinkToFit(items []flexItem, baseSum, avail float64) {
	if avail < 0 {
		avail = 0
	}
	for idx := range items {
		if baseSum > 0 {
			// Multiply before dividing so integral inputs stay exact.
			items[idx].mainSize = items[idx].baseMain * avail / baseSum
		} else {
			items[idx].mainSize = 0
		}
	}
}

// justifyOffset returns the initial main-axis offset for the given
// packing mode and undistributed free space.
func justifyOffset(j Justify, free float64) float64 {
	if free <= 0 {
		return 0
	}
	switch j {
	case JustifyCenter:
		return free / 2
	case JustifyEnd:
		return free
	default:
		return 0
	}
}

// alignOffset returns the cross-axis offset for positioning a child of
// the given size within the available cross extent.
func alignOffset(a Align, crossAvail, itemSize float64) float64 {
	switch a {
	case AlignCenter:
		return (crossAvail - itemSize) / 2
	case AlignEnd:
		return crossAvail - itemSize
	default:
		return 0
	}
}
