// Package drop resolves drag-and-drop placement for grid layouts: given a
// pointer position over a target panel, it classifies the drop intent and
// computes the resulting layout.
//
// # Pipeline
//
// The interaction layer re-evaluates [ClassifyPointer] on every pointer
// move. The returned [Placeholder] names the panel under the pointer, its
// region, and the classified intent - top, bottom, left, right or center -
// and is typically rendered as a drop preview. Nothing is committed until
// [ApplyDrop] runs with the final placeholder.
//
// # Classification
//
// Intent is derived from the pointer's position inside the target, measured
// from the target's bottom-left corner. Two regimes apply: when the dragged
// and target panels are the same size, or sit flush along a complete border
// of equal length ("border-fit"), the target is partitioned into a 3×3 grid
// whose outer cells are split by the diagonals and whose middle cell yields
// center. For unequal sizes only the diagonals decide, and center is never
// produced. Targets too small to split veto the corresponding intents: a
// one-row-tall target never classifies as top or bottom.
//
// # Application
//
// A center drop swaps the two panels, anchoring trailing edges when widths
// differ so edges stay flush. An edge drop first lets neighbors flush
// against the dragged panel's vacated rectangle absorb that space, then
// splits the target in half perpendicular to the chosen edge: the dragged
// panel takes the half nearer the edge, the target keeps the rest. Halving
// odd dimensions yields fractional sizes; geometry is float64 throughout.
//
// ApplyDrop is pure: it returns a new layout and leaves its input untouched.
// The resolver holds no state between calls.
package drop
