// Package grid provides the arrangement engine for dashboard layouts built
// from rectangular panels on an integer grid.
//
// # Overview
//
// A layout is an ordered collection of items, each occupying an axis-aligned
// rectangle in grid units. The engine answers three questions: whether two
// items overlap, how items rearrange when one of them is moved or when the
// grid is compacted, and how items are clipped back into a fixed column
// count. The companion [drop] subpackage resolves drag-and-drop placement
// (swap vs. split-and-fill) on top of these primitives.
//
// # Basic Usage
//
// Build a layout from items and run the passes you need:
//
//	l := grid.Layout{
//	    &grid.Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
//	    &grid.Item{ID: "b", X: 0, Y: 5, W: 2, H: 2},
//	}
//	l = grid.Compact(l, true) // b settles at y=2
//
// Moving an item cascades displacement to everything it newly overlaps:
//
//	l = grid.MoveElement(l, "a", grid.At(0, 1), true, false)
//
// # Coordinates
//
// Items occupy the half-open region [x, x+w) × [y, y+h): rectangles that
// merely touch along an edge do not collide. The y axis grows downward, so
// "compacting up" means decreasing y. Geometry is carried as float64 because
// the drop resolver halves item dimensions, which produces fractional sizes
// for odd inputs.
//
// # Static Items
//
// An item marked Static is never relocated or resized by any engine
// operation. It still participates as an obstacle: other items flow around
// it during compaction and cascading moves.
//
// # Mutation Discipline
//
// Every exported operation clones the input layout and returns the result;
// the caller's slice and items are never written to. The transient Moved
// flag is cleared at the start of each resolution pass and never leaks
// across operations.
//
// # Concurrency
//
// Operations are pure functions over the layout passed in; distinct layouts
// can be processed in parallel. A single layout value must not be handed to
// two concurrent operations, since they share the underlying item slice.
//
// [drop]: github.com/openlayout/gridarb/pkg/grid/drop
package grid
