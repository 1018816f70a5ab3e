package grid

// Collides reports whether two items overlap with positive area. Rectangles
// are half-open, so items that merely touch along an edge do not collide.
// An item never collides with itself; identity is decided by ID, not by
// coordinates, so two distinct items occupying the same region do collide.
func Collides(a, b *Item) bool {
	if a == b || a.ID == b.ID {
		return false
	}
	if a.Right() <= b.X { // a left of b
		return false
	}
	if a.X >= b.Right() { // a right of b
		return false
	}
	if a.Bottom() <= b.Y { // a above b
		return false
	}
	if a.Y >= b.Bottom() { // a below b
		return false
	}
	return true
}

// FirstCollision returns the first item in the collection's current order
// that overlaps it, or nil when the item is clear. The result is
// order-dependent by design: callers control the outcome by pre-sorting the
// collection (see SortLayout).
func FirstCollision(l Layout, it *Item) *Item {
	for _, other := range l {
		if Collides(other, it) {
			return other
		}
	}
	return nil
}

// AllCollisions returns every item overlapping it, in the collection's
// current order.
func AllCollisions(l Layout, it *Item) []*Item {
	var out []*Item
	for _, other := range l {
		if Collides(other, it) {
			out = append(out, other)
		}
	}
	return out
}

// Statics returns the static items of the layout, in layout order. The
// returned slice shares items with l.
func Statics(l Layout) Layout {
	var out Layout
	for _, it := range l {
		if it.Static {
			out = append(out, it)
		}
	}
	return out
}
