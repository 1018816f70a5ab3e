package ascii

import (
	"strings"
	"testing"

	"github.com/openlayout/gridarb/pkg/grid"
)

func TestRenderPlain(t *testing.T) {
	l := grid.Layout{
		&grid.Item{ID: "a", X: 0, Y: 0, W: 2, H: 1},
		&grid.Item{ID: "b", X: 2, Y: 0, W: 2, H: 2},
	}
	got := Render(l, Options{Cols: 4, CellWidth: 1})

	want := "aabb\n" +
		"··bb\n"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDerivesSize(t *testing.T) {
	l := grid.Layout{
		&grid.Item{ID: "a", X: 1, Y: 1, W: 2, H: 1},
	}
	got := Render(l, Options{CellWidth: 1})

	want := "···\n" +
		"·aa\n"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderFractionalRounding(t *testing.T) {
	// A 1.5-wide item at x=0 rounds to two display cells.
	l := grid.Layout{
		&grid.Item{ID: "a", X: 0, Y: 0, W: 1.5, H: 1},
	}
	got := Render(l, Options{Cols: 3, CellWidth: 1})

	want := "aa·\n"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, Options{Cols: 4}); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestRenderStyled(t *testing.T) {
	l := grid.Layout{
		&grid.Item{ID: "a", X: 0, Y: 0, W: 1, H: 1},
	}
	// Styled output still contains the panel's cells; exact escape
	// sequences depend on the terminal profile, so only check content.
	got := Render(l, Options{Cols: 1, Styled: true, CellWidth: 1})
	if !strings.Contains(got, "a") {
		t.Errorf("styled render lost content: %q", got)
	}
}
