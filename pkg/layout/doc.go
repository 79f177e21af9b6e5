// Package layout implements a strategy-based layout engine for touch-UI
// widget trees.
//
// It converts a widget tree plus a per-subtree [Spec] into concrete pixel
// rectangles: bottom-up size negotiation through [MinSize], top-down
// placement through [Calculate], clipping policy, and percentage-vs-pixel
// unit reconciliation through [Frac] overrides. Two strategies are
// supported behind one engine contract: [Absolute] placement and
// [FlexibleAxis] distribution.
//
// The engine is synchronous and allocation-light so it can run every
// frame on constrained hardware. It never mutates the widget tree; the
// adapter in pkg/widget commits result buffers back onto stored bounds.
package layout
