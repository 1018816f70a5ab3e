package grid

import (
	"fmt"
	"sort"
)

// Item is a single panel on the grid. Position and size are expressed in
// grid units; the occupied region is the half-open rectangle
// [X, X+W) × [Y, Y+H).
//
// The zero value is not usable - ID must be non-empty and unique within a
// layout before the item takes part in any engine operation.
type Item struct {
	ID string // Unique identifier within a layout

	X, Y float64 // Top-left corner in grid units (y grows downward)
	W, H float64 // Size in grid units

	// Optional size bounds. Zero means unset. The engine carries these
	// through unchanged; they are consumed by the resize interaction layer.
	MinW, MinH float64
	MaxW, MaxH float64

	// Static items are never relocated or resized by the engine but still
	// block other items as obstacles.
	Static bool

	// Moved is transient bookkeeping for a single resolution pass. It is
	// cleared at the start of every pass and guards against displacement
	// cycles while a cascade is in flight.
	Moved bool

	// Interaction capabilities, three-valued: nil means "use the layout
	// default". Resolved by the interaction layer, never by the engine.
	IsDraggable *bool
	IsResizable *bool
}

// String returns a compact description used in logs and test failures.
func (it *Item) String() string {
	return fmt.Sprintf("%s(%g,%g %gx%g)", it.ID, it.X, it.Y, it.W, it.H)
}

// Right returns the x coordinate one past the item's right edge.
func (it *Item) Right() float64 { return it.X + it.W }

// Bottom returns the y coordinate one past the item's bottom edge.
func (it *Item) Bottom() float64 { return it.Y + it.H }

// Contains reports whether the grid point (x, y) falls inside the item's
// half-open rectangle.
func (it *Item) Contains(x, y float64) bool {
	return x >= it.X && x < it.Right() && y >= it.Y && y < it.Bottom()
}

// Layout is an ordered collection of items. IDs are unique; slice order
// carries no meaning except where an operation defines a traversal order
// (the row-major sweep used by Compact and MoveElement).
type Layout []*Item

// Clone returns a deep copy of the layout. Every exported engine operation
// clones its input, so callers never observe partial mutation.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for i, it := range l {
		cp := *it
		out[i] = &cp
	}
	return out
}

// Find returns the item with the given ID, or nil if absent.
func (l Layout) Find(id string) *Item {
	for _, it := range l {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Index returns an ID → item map over the layout. Build it once per batch
// of lookups; it aliases the layout's items and goes stale if items are
// added or removed.
func (l Layout) Index() map[string]*Item {
	idx := make(map[string]*Item, len(l))
	for _, it := range l {
		idx[it.ID] = it
	}
	return idx
}

// IDs returns the set of item IDs in layout order.
func (l Layout) IDs() []string {
	ids := make([]string, len(l))
	for i, it := range l {
		ids[i] = it.ID
	}
	return ids
}

// SortLayout returns a row-major ordering of the layout: y ascending, then
// x ascending. The sort is stable so equal positions keep their original
// relative order. The returned slice shares items with l; only the ordering
// is new. This ordering is the authoritative processing order for Compact
// and for collision traversal in MoveElement.
func SortLayout(l Layout) Layout {
	sorted := make(Layout, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return sorted
}

// reverse returns the slice in reverse order without mutating the input.
func reverse(l Layout) Layout {
	out := make(Layout, len(l))
	for i, it := range l {
		out[len(l)-1-i] = it
	}
	return out
}

// clearMoved resets the transient Moved flag on every item. Each resolution
// pass starts from a clean slate.
func clearMoved(l Layout) {
	for _, it := range l {
		it.Moved = false
	}
}
