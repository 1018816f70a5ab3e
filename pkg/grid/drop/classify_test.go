package drop

import (
	"testing"

	"github.com/openlayout/gridarb/pkg/grid"
)

// symmetric pair: dragged and target are both 4x4.
func symmetricLayout() grid.Layout {
	return grid.Layout{
		&grid.Item{ID: "drag", X: 10, Y: 10, W: 4, H: 4},
		&grid.Item{ID: "tgt", X: 0, Y: 0, W: 4, H: 4},
	}
}

func TestClassifyPointerSymmetric(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   Pos
	}{
		// Pointer in the middle third of both axes.
		{name: "center", px: 2, py: 2, want: PosCenter},
		// Outer thirds classify by the diagonals.
		{name: "top", px: 2, py: 0.1, want: PosTop},
		{name: "bottom", px: 2, py: 3.9, want: PosBottom},
		{name: "left", px: 0.2, py: 2, want: PosLeft},
		{name: "right", px: 3.8, py: 2, want: PosRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph := ClassifyPointer(symmetricLayout(), "drag", tt.px, tt.py)
			if ph == nil {
				t.Fatal("no placeholder")
			}
			if ph.Pos != tt.want {
				t.Errorf("Pos = %s, want %s", ph.Pos, tt.want)
			}
			if ph.TargetID != "tgt" {
				t.Errorf("TargetID = %s, want tgt", ph.TargetID)
			}
			if ph.X != 0 || ph.Y != 0 || ph.W != 4 || ph.H != 4 {
				t.Errorf("region = (%g,%g %gx%g), want target rect", ph.X, ph.Y, ph.W, ph.H)
			}
		})
	}
}

func TestClassifyPointerAsymmetricNeverCenter(t *testing.T) {
	l := grid.Layout{
		&grid.Item{ID: "drag", X: 10, Y: 10, W: 2, H: 2},
		&grid.Item{ID: "tgt", X: 0, Y: 0, W: 4, H: 4},
	}
	// Sweep the target's interior: center must never come back for
	// unequal sizes.
	for px := 0.25; px < 4; px += 0.25 {
		for py := 0.25; py < 4; py += 0.25 {
			ph := ClassifyPointer(l, "drag", px, py)
			if ph == nil {
				t.Fatalf("no placeholder at (%g,%g)", px, py)
			}
			switch ph.Pos {
			case PosTop, PosBottom, PosLeft, PosRight:
			default:
				t.Fatalf("Pos = %s at (%g,%g), want an edge", ph.Pos, px, py)
			}
		}
	}
}

func TestClassifyPointerBorderFit(t *testing.T) {
	// Different sizes, but flush along a complete border of equal length:
	// the symmetric regime applies and the middle yields center.
	l := grid.Layout{
		&grid.Item{ID: "drag", X: 4, Y: 0, W: 2, H: 4},
		&grid.Item{ID: "tgt", X: 0, Y: 0, W: 4, H: 4},
	}
	ph := ClassifyPointer(l, "drag", 2, 2)
	if ph == nil || ph.Pos != PosCenter {
		t.Fatalf("Pos = %v, want center", ph)
	}
}

func TestClassifyPointerBoundaryVetoes(t *testing.T) {
	t.Run("one row tall never top or bottom", func(t *testing.T) {
		l := grid.Layout{
			&grid.Item{ID: "drag", X: 10, Y: 10, W: 2, H: 2},
			&grid.Item{ID: "tgt", X: 0, Y: 0, W: 4, H: 1},
		}
		for px := 0.25; px < 4; px += 0.25 {
			ph := ClassifyPointer(l, "drag", px, 0.5)
			if ph == nil {
				t.Fatalf("no placeholder at px=%g", px)
			}
			if ph.Pos == PosTop || ph.Pos == PosBottom {
				t.Fatalf("Pos = %s at px=%g, target is 1 row tall", ph.Pos, px)
			}
		}
	})

	t.Run("center vetoed on flat target falls through", func(t *testing.T) {
		l := grid.Layout{
			&grid.Item{ID: "drag", X: 10, Y: 10, W: 4, H: 1},
			&grid.Item{ID: "tgt", X: 0, Y: 0, W: 4, H: 1},
		}
		// Same size, middle of the target: center and top are both vetoed
		// by the 1-unit height, so classification falls through to an edge.
		ph := ClassifyPointer(l, "drag", 2, 0.5)
		if ph == nil {
			t.Fatal("no placeholder")
		}
		if ph.Pos != PosLeft && ph.Pos != PosRight {
			t.Errorf("Pos = %s, want left or right", ph.Pos)
		}
	})

	t.Run("unit target has no valid placement", func(t *testing.T) {
		l := grid.Layout{
			&grid.Item{ID: "drag", X: 10, Y: 10, W: 1, H: 1},
			&grid.Item{ID: "tgt", X: 0, Y: 0, W: 1, H: 1},
		}
		if ph := ClassifyPointer(l, "drag", 0.5, 0.5); ph != nil {
			t.Errorf("placeholder = %v, want nil", ph)
		}
	})
}

func TestClassifyPointerMisses(t *testing.T) {
	l := symmetricLayout()

	// Empty grid under the pointer.
	if ph := ClassifyPointer(l, "drag", 7, 7); ph != nil {
		t.Errorf("empty grid: placeholder = %v, want nil", ph)
	}
	// Pointer over the dragged item itself.
	if ph := ClassifyPointer(l, "drag", 11, 11); ph != nil {
		t.Errorf("over dragged: placeholder = %v, want nil", ph)
	}
	// Unknown dragged id.
	if ph := ClassifyPointer(l, "nope", 2, 2); ph != nil {
		t.Errorf("unknown dragged: placeholder = %v, want nil", ph)
	}
}

func TestClassifyPointerFirstMatchOrder(t *testing.T) {
	// Overlapping items: the first panel in layout order wins. That
	// order-dependence is the documented contract.
	under := &grid.Item{ID: "under", X: 0, Y: 0, W: 4, H: 4, Static: true}
	over := &grid.Item{ID: "over", X: 0, Y: 0, W: 4, H: 4}
	dragged := &grid.Item{ID: "drag", X: 10, Y: 10, W: 4, H: 4}

	ph := ClassifyPointer(grid.Layout{under, over, dragged}, "drag", 1, 1)
	if ph == nil || ph.TargetID != "under" {
		t.Fatalf("target = %v, want under", ph)
	}

	ph = ClassifyPointer(grid.Layout{over, under, dragged}, "drag", 1, 1)
	if ph == nil || ph.TargetID != "over" {
		t.Fatalf("target = %v, want over", ph)
	}
}
