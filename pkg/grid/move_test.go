package grid

import (
	"sort"
	"testing"
)

func TestMoveElementStaticNoop(t *testing.T) {
	l := Layout{
		&Item{ID: "s", X: 0, Y: 0, W: 2, H: 2, Static: true},
	}
	out := MoveElement(l, "s", At(4, 4), true, false)
	if !sameGeometry(l, out) {
		t.Errorf("static item moved: %v", out)
	}
}

func TestMoveElementUnknownID(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
	}
	out := MoveElement(l, "nope", At(4, 4), true, false)
	if !sameGeometry(l, out) {
		t.Errorf("unknown id changed layout: %v", out)
	}
}

func TestMoveElementFree(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "b", X: 4, Y: 0, W: 2, H: 2},
	}
	out := MoveElement(l, "a", At(0, 4), true, false)

	if out[0].X != 0 || out[0].Y != 4 {
		t.Errorf("a = %v, want (0,4)", out[0])
	}
	if out[1].X != 4 || out[1].Y != 0 {
		t.Errorf("b = %v, want unchanged", out[1])
	}
	// Input untouched.
	if l[0].Y != 0 {
		t.Error("MoveElement mutated its input")
	}
}

func TestMoveElementXOnly(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 3, W: 2, H: 2},
	}
	out := MoveElement(l, "a", AtX(5), true, false)
	if out[0].X != 5 || out[0].Y != 3 {
		t.Errorf("a = %v, want (5,3)", out[0])
	}
}

func TestMoveElementPreventCollision(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "b", X: 0, Y: 2, W: 2, H: 2},
	}
	out := MoveElement(l, "a", At(0, 1), true, true)

	if !sameGeometry(l, out) {
		t.Fatalf("rejected move changed layout: %v", out)
	}
	for _, it := range out {
		if it.Moved {
			t.Errorf("%s has Moved set after rejection", it.ID)
		}
	}
}

func TestMoveElementPushesObstacleDown(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "b", X: 0, Y: 2, W: 2, H: 2},
	}
	out := MoveElement(l, "a", At(0, 1), true, false)

	a, b := out.Find("a"), out.Find("b")
	if a.Y != 1 {
		t.Errorf("a.Y = %g, want 1", a.Y)
	}
	// The slot above a is occupied by a itself, so b falls back to one row
	// below its previous position.
	if b.Y != 3 {
		t.Errorf("b.Y = %g, want 3", b.Y)
	}
}

func TestMoveElementObstacleJumpsAbove(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "c", X: 0, Y: 2, W: 2, H: 2},
	}
	// Dragging a fully onto c leaves the slot above free, so c jumps there:
	// the two items effectively swap.
	out := MoveElement(l, "a", At(0, 2), true, false)

	a, c := out.Find("a"), out.Find("c")
	if a.X != 0 || a.Y != 2 {
		t.Errorf("a = %v, want (0,2)", a)
	}
	if c.X != 0 || c.Y != 0 {
		t.Errorf("c = %v, want (0,0)", c)
	}
}

func TestMoveElementStaticBlocksDrag(t *testing.T) {
	l := Layout{
		&Item{ID: "b", X: 0, Y: 0, W: 2, H: 2, Static: true},
		&Item{ID: "a", X: 0, Y: 4, W: 2, H: 2},
	}
	out := MoveElement(l, "a", At(0, 0), true, false)
	out = Compact(out, true)

	b, a := out.Find("b"), out.Find("a")
	if b.X != 0 || b.Y != 0 {
		t.Errorf("static b moved: %v", b)
	}
	if a.Y != b.Bottom() {
		t.Errorf("a.Y = %g, want %g", a.Y, b.Bottom())
	}
}

func TestMoveElementNearMissTolerance(t *testing.T) {
	l := Layout{
		&Item{ID: "b", X: 0, Y: 0, W: 2, H: 4},
		&Item{ID: "a", X: 0, Y: 6, W: 2, H: 2},
	}
	// a ends up below b with a vertical gap of 2, above b's quarter-height
	// threshold of 1: the overlap is ignored instead of displacing b.
	out := MoveElement(l, "a", At(0, 2), true, false)

	b, a := out.Find("b"), out.Find("a")
	if b.Y != 0 {
		t.Errorf("b displaced by near miss: %v", b)
	}
	if a.Y != 2 {
		t.Errorf("a.Y = %g, want 2", a.Y)
	}
}

func TestMoveElementCascade(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "b", X: 0, Y: 2, W: 2, H: 2},
		&Item{ID: "c", X: 0, Y: 4, W: 2, H: 2},
	}
	out := MoveElement(l, "a", At(0, 1), true, false)
	out = Compact(out, true)

	// The stack stays a stack: no overlaps, everything within three rows.
	for _, it := range out {
		for _, other := range out {
			if it != other && Collides(it, other) {
				t.Errorf("%v overlaps %v after cascade", it, other)
			}
		}
		if it.Bottom() > 6 {
			t.Errorf("%v pushed past the compacted extent", it)
		}
	}
}

func TestMoveElementTerminatesOnPileUp(t *testing.T) {
	// Three items on the same cell, a pathological input. The Moved guard
	// and the near-miss tolerance must settle this without looping.
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "b", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "c", X: 0, Y: 0, W: 2, H: 2},
	}
	out := MoveElement(l, "a", At(0, 0), true, false)

	if len(out) != 3 {
		t.Fatalf("item count changed: %d", len(out))
	}
}

func TestMoveElementPreservesIdentity(t *testing.T) {
	l := Layout{
		&Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&Item{ID: "b", X: 0, Y: 2, W: 2, H: 2},
		&Item{ID: "c", X: 2, Y: 0, W: 2, H: 4},
	}
	out := MoveElement(l, "a", At(1, 1), true, false)

	want := []string{"a", "b", "c"}
	got := out.IDs()
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("item count changed: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids changed: %v", got)
		}
	}
}
