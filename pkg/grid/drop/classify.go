package drop

import "github.com/openlayout/gridarb/pkg/grid"

// Pos is a classified drop intent.
type Pos string

// Drop intents. An edge intent splits the target along the perpendicular
// axis; center swaps the two panels.
const (
	PosTop    Pos = "top"
	PosBottom Pos = "bottom"
	PosLeft   Pos = "left"
	PosRight  Pos = "right"
	PosCenter Pos = "center"
)

// Placeholder is the transient drop target computed for one pointer
// position: the candidate region, the classified intent, and the panel
// under the pointer. It lives for the duration of a single drag gesture and
// is discarded once the drop decision is applied.
type Placeholder struct {
	X, Y, W, H float64 // target region in grid units
	Pos        Pos
	TargetID   string // panel under the pointer
}

// ClassifyPointer finds the panel under the pointer and classifies the drop
// intent, or returns nil when the pointer is over empty grid, over the
// dragged panel itself, or over a target too small for any valid placement.
//
// The target is the first panel in layout order whose rectangle contains
// the pointer. When panels overlap (statics drawn under others), that
// order-dependence is the contract: callers control the outcome through
// layout order.
func ClassifyPointer(l grid.Layout, draggedID string, px, py float64) *Placeholder {
	dragged := l.Find(draggedID)
	if dragged == nil {
		return nil
	}

	var target *grid.Item
	for _, it := range l {
		if it.ID == draggedID {
			continue
		}
		if it.Contains(px, py) {
			target = it
			break
		}
	}
	if target == nil {
		return nil
	}

	// Target-local coordinates measured from the bottom-left corner, y
	// growing upward, so the diagonal formulas work in math orientation.
	dx := px - target.X
	dy := target.Bottom() - py

	pos := classifyQuadrant(target.W, target.H, dx, dy, symmetricRegime(dragged, target))
	if pos == "" {
		return nil
	}
	return &Placeholder{
		X: target.X, Y: target.Y, W: target.W, H: target.H,
		Pos:      pos,
		TargetID: target.ID,
	}
}

// symmetricRegime reports whether classification uses the 3×3 partition:
// the two panels are the same size, or they sit flush along a complete
// border of equal length (border-fit).
func symmetricRegime(dragged, target *grid.Item) bool {
	if dragged.W == target.W && dragged.H == target.H {
		return true
	}
	return borderFit(dragged, target)
}

// borderFit reports whether the two items share a full border of equal
// length: flush along one axis with identical span on the other.
func borderFit(a, b *grid.Item) bool {
	vertical := a.Y == b.Y && a.H == b.H &&
		(a.Right() == b.X || b.Right() == a.X)
	horizontal := a.X == b.X && a.W == b.W &&
		(a.Bottom() == b.Y || b.Bottom() == a.Y)
	return vertical || horizontal
}

// classifyQuadrant maps a target-local pointer position (dx right from the
// left edge, dy up from the bottom edge) to a drop intent. Candidate
// intents are tried in order and the first one the target can actually
// honor wins; an empty result means no valid placement exists.
func classifyQuadrant(w, h, dx, dy float64, symmetric bool) Pos {
	for _, p := range candidates(w, h, dx, dy, symmetric) {
		if boundaryOK(p, w, h) {
			return p
		}
	}
	return ""
}

// candidates computes the classification chain. In the symmetric regime a
// pointer in the middle third of both axes yields center first; everywhere,
// the diagonal classification follows, backed by its perpendicular
// alternative for when the target is too flat or too narrow to honor it.
func candidates(w, h, dx, dy float64, symmetric bool) []Pos {
	diag := diagonal(w, h, dx, dy)
	perp := perpendicular(diag, w, h, dx, dy)
	if symmetric && dx >= w/3 && dx <= 2*w/3 && dy >= h/3 && dy <= 2*h/3 {
		return []Pos{PosCenter, diag, perp}
	}
	return []Pos{diag, perp}
}

// diagonal classifies by which side of the two diagonals the point falls
// on: y = (h/w)·x from the bottom-left corner and y = h − (h/w)·x from the
// top-left corner. The four sectors map to the four edges.
func diagonal(w, h, dx, dy float64) Pos {
	main := dy - (h/w)*dx       // above the bottom-left→top-right diagonal
	anti := dy - (h - (h/w)*dx) // above the top-left→bottom-right diagonal
	switch {
	case main >= 0 && anti >= 0:
		return PosTop
	case main < 0 && anti < 0:
		return PosBottom
	case main >= 0:
		return PosLeft
	default:
		return PosRight
	}
}

// perpendicular is the fallback when the primary edge intent is vetoed: a
// vertical intent falls back to the nearer horizontal edge and vice versa.
func perpendicular(p Pos, w, h, dx, dy float64) Pos {
	switch p {
	case PosTop, PosBottom:
		if dx < w/2 {
			return PosLeft
		}
		return PosRight
	default:
		if dy >= h/2 {
			return PosTop
		}
		return PosBottom
	}
}

// boundaryOK vetoes placements the target cannot honor: splitting needs at
// least 2 grid units along the split axis, and a center swap needs a target
// of at least 2×2.
func boundaryOK(p Pos, w, h float64) bool {
	switch p {
	case PosCenter:
		return w >= 2 && h >= 2
	case PosTop, PosBottom:
		return h >= 2
	case PosLeft, PosRight:
		return w >= 2
	default:
		return false
	}
}
