package grid

import "math"

// Compact removes vertical gaps between items while respecting the existing
// horizontal arrangement. Items are processed in row-major order (SortLayout);
// each settled item becomes an obstacle for the ones after it. Static items
// never move but block others from the start.
//
// With verticalCompact false the pass only resolves residual overlaps by
// pushing items down; gaps are left alone.
//
// The result is a new layout: output slots match the input slots, with the
// content computed in sorted order. Moved flags are cleared on the output.
func Compact(l Layout, verticalCompact bool) Layout {
	cl := l.Clone()

	// Statics block from the start but are never repositioned themselves.
	compareWith := Statics(cl)

	slot := make(map[*Item]int, len(cl))
	for i, it := range cl {
		slot[it] = i
	}

	out := make(Layout, len(cl))
	for _, it := range SortLayout(cl) {
		if !it.Static {
			compactItem(compareWith, it, verticalCompact)
			compareWith = append(compareWith, it)
		}
		out[slot[it]] = it
		it.Moved = false
	}
	return out
}

// compactItem settles a single item against the obstacles accumulated so
// far. When verticalCompact is set the item is first pulled up as far as it
// will go; either way any remaining overlap is resolved by pushing the item
// below the obstacle it hits.
func compactItem(compareWith Layout, it *Item, verticalCompact bool) {
	if verticalCompact {
		// Step in whole rows but clamp at 0 so fractional positions
		// (from edge splits) settle on the top row instead of above it.
		for it.Y > 0 && FirstCollision(compareWith, it) == nil {
			it.Y = math.Max(0, it.Y-1)
		}
	}
	for {
		c := FirstCollision(compareWith, it)
		if c == nil {
			break
		}
		it.Y = c.Bottom()
	}
}
