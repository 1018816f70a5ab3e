package drop_test

import (
	"fmt"

	"github.com/openlayout/gridarb/pkg/grid"
	"github.com/openlayout/gridarb/pkg/grid/drop"
)

func ExampleClassifyPointer() {
	l := grid.Layout{
		&grid.Item{ID: "a", X: 10, Y: 10, W: 4, H: 4},
		&grid.Item{ID: "b", X: 0, Y: 0, W: 4, H: 4},
	}

	// Pointer in the middle of b while dragging a: same size, so the
	// symmetric regime yields a center swap.
	ph := drop.ClassifyPointer(l, "a", 2, 2)
	fmt.Println(ph.TargetID, ph.Pos)

	// Pointer near b's right edge.
	ph = drop.ClassifyPointer(l, "a", 3.8, 2)
	fmt.Println(ph.TargetID, ph.Pos)
	// Output:
	// b center
	// b right
}

func ExampleApplyDrop() {
	l := grid.Layout{
		&grid.Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		&grid.Item{ID: "b", X: 4, Y: 0, W: 4, H: 4},
	}

	// Drop a on b's right edge: b gives up its right half.
	ph := &drop.Placeholder{X: 4, Y: 0, W: 4, H: 4, Pos: drop.PosRight, TargetID: "b"}
	out := drop.ApplyDrop(l, "a", ph)

	fmt.Println(out.Find("a"))
	fmt.Println(out.Find("b"))
	// Output:
	// a(6,0 2x4)
	// b(4,0 2x4)
}
