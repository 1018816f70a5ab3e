package drop

import "github.com/openlayout/gridarb/pkg/grid"

// ApplyDrop commits a drop decision and returns the resulting layout. The
// input layout is left untouched. The set of item IDs and the item count
// never change; only positions, sizes and region ownership do.
//
// A center drop exchanges the dragged panel with the target. An edge drop
// first lets the neighbors flush against the dragged panel's vacated
// rectangle absorb that space, then splits the target in half along the
// axis perpendicular to the chosen edge: the dragged panel takes the half
// nearer the edge, the target keeps the other half.
//
// An unknown dragged or target ID returns the input layout unchanged.
func ApplyDrop(l grid.Layout, draggedID string, ph *Placeholder) grid.Layout {
	if ph == nil {
		return l
	}
	cl := l.Clone()
	idx := cl.Index()
	dragged, target := idx[draggedID], idx[ph.TargetID]
	if dragged == nil || target == nil || dragged == target {
		return l
	}

	if ph.Pos == PosCenter {
		exchange(dragged, target)
		return cl
	}

	// Neighbors are collected against the dragged panel's original
	// rectangle, before anything moves.
	for _, n := range alignItems(cl, dragged, target) {
		fillGap(n.item, n.side, dragged)
	}
	splitDropItem(target, dragged, ph.Pos)
	return cl
}

// exchange swaps the two panels' positions. When widths differ, the item
// landing on the right anchors its trailing edge instead of its origin so
// the right edges stay flush.
func exchange(dragged, target *grid.Item) {
	oldX, oldY := dragged.X, dragged.Y
	if target.X > dragged.X {
		dragged.X = target.X + target.W - dragged.W
		target.X = oldX
	} else {
		dragged.X = target.X
		target.X = oldX + dragged.W - target.W
	}
	dragged.Y, target.Y = target.Y, oldY
}

// side names the edge of the dragged panel a neighbor is flush against.
type side int

const (
	sideLeft side = iota
	sideRight
	sideAbove
	sideBelow
)

// alignItem pairs a flush neighbor with the edge it touches.
type alignItem struct {
	item *grid.Item
	side side
}

// alignItems returns the panels flush against the dragged panel's
// rectangle whose span fully covers the dragged panel's span along the
// shared edge. Those are the panels that can absorb the vacated space
// without creating an L-shaped hole. The target is excluded: it is being
// split, not expanded.
func alignItems(l grid.Layout, dragged, target *grid.Item) []alignItem {
	var out []alignItem
	for _, it := range l {
		if it == dragged || it == target {
			continue
		}
		coversV := it.Y <= dragged.Y && it.Bottom() >= dragged.Bottom()
		coversH := it.X <= dragged.X && it.Right() >= dragged.Right()
		switch {
		case coversV && it.Right() == dragged.X:
			out = append(out, alignItem{it, sideLeft})
		case coversV && it.X == dragged.Right():
			out = append(out, alignItem{it, sideRight})
		case coversH && it.Bottom() == dragged.Y:
			out = append(out, alignItem{it, sideAbove})
		case coversH && it.Y == dragged.Bottom():
			out = append(out, alignItem{it, sideBelow})
		}
	}
	return out
}

// fillGap grows a flush neighbor into the space the dragged panel vacates,
// in the direction away from the shared border.
func fillGap(it *grid.Item, s side, dragged *grid.Item) {
	switch s {
	case sideLeft:
		it.W += dragged.W
	case sideRight:
		it.X -= dragged.W
		it.W += dragged.W
	case sideAbove:
		it.H += dragged.H
	case sideBelow:
		it.Y -= dragged.H
		it.H += dragged.H
	}
}

// splitDropItem halves the target along the axis perpendicular to the
// chosen edge. The dragged panel adopts the half region nearer the edge;
// the target keeps the other half. Halving odd dimensions produces
// fractional sizes.
func splitDropItem(target, dragged *grid.Item, pos Pos) {
	switch pos {
	case PosLeft:
		dragged.X, dragged.Y = target.X, target.Y
		dragged.W, dragged.H = target.W/2, target.H
		target.X += target.W / 2
		target.W /= 2
	case PosRight:
		dragged.X, dragged.Y = target.X+target.W/2, target.Y
		dragged.W, dragged.H = target.W/2, target.H
		target.W /= 2
	case PosTop:
		dragged.X, dragged.Y = target.X, target.Y
		dragged.W, dragged.H = target.W, target.H/2
		target.Y += target.H / 2
		target.H /= 2
	case PosBottom:
		dragged.X, dragged.Y = target.X, target.Y+target.H/2
		dragged.W, dragged.H = target.W, target.H/2
		target.H /= 2
	}
}
