// Package ascii renders a grid layout as a block of terminal text, one
// character cell per grid unit. It is a debugging and preview aid for the
// CLI and TUI; visual fidelity (pixel sizing, CSS transforms) is the
// hosting application's concern, not the engine's.
package ascii

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openlayout/gridarb/pkg/grid"
)

// Options controls rendering.
type Options struct {
	// Cols is the grid width in columns. Zero derives the width from the
	// rightmost item edge.
	Cols float64

	// Styled colorizes panels with lipgloss. Unstyled output is plain
	// text, suitable for tests and non-TTY output.
	Styled bool

	// CellWidth is the number of characters per grid unit horizontally.
	// Zero means 2, which keeps cells roughly square in most terminals.
	CellWidth int

	// Highlight marks one panel (by id) with inverted colors, used by the
	// interactive TUI for the selected panel.
	Highlight string
}

const emptyCell = '·'

// Panel colors cycle through a small palette; statics render dim.
var (
	palette = []lipgloss.Color{
		lipgloss.Color("36"),  // teal
		lipgloss.Color("35"),  // green
		lipgloss.Color("220"), // amber
		lipgloss.Color("75"),  // blue
		lipgloss.Color("167"), // soft red
		lipgloss.Color("177"), // violet
	}
	staticColor = lipgloss.Color("240")
)

// Render draws the layout. Each item paints its cells with the first rune
// of its id; empty grid renders as '·'. Fractional geometry is rounded to
// the nearest cell for display only - the layout itself is not touched.
func Render(l grid.Layout, opts Options) string {
	cellW := opts.CellWidth
	if cellW <= 0 {
		cellW = 2
	}

	cols := int(math.Ceil(opts.Cols))
	rows := 0
	for _, it := range l {
		if b := int(math.Ceil(it.Bottom())); b > rows {
			rows = b
		}
		if opts.Cols == 0 {
			if r := int(math.Ceil(it.Right())); r > cols {
				cols = r
			}
		}
	}
	if cols == 0 || rows == 0 {
		return ""
	}

	// owner[row][col] points at the item painted there; later items in
	// layout order win, matching the first-match-from-the-top z-order the
	// classifier documents in reverse.
	owner := make([][]*grid.Item, rows)
	for r := range owner {
		owner[r] = make([]*grid.Item, cols)
	}
	for _, it := range l {
		x0, y0 := roundUnit(it.X), roundUnit(it.Y)
		x1, y1 := roundUnit(it.Right()), roundUnit(it.Bottom())
		for r := max(y0, 0); r < min(y1, rows); r++ {
			for c := max(x0, 0); c < min(x1, cols); c++ {
				owner[r][c] = it
			}
		}
	}

	styles := cellStyles(l, opts)

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			it := owner[r][c]
			cell := strings.Repeat(string(emptyCell), cellW)
			if it != nil {
				cell = strings.Repeat(string([]rune(it.ID)[0]), cellW)
			}
			if opts.Styled && it != nil {
				cell = styles[it.ID].Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellStyles assigns each panel a stable style from the palette.
func cellStyles(l grid.Layout, opts Options) map[string]lipgloss.Style {
	styles := make(map[string]lipgloss.Style, len(l))
	next := 0
	for _, it := range l {
		color := staticColor
		if !it.Static {
			color = palette[next%len(palette)]
			next++
		}
		s := lipgloss.NewStyle().Foreground(color)
		if it.ID == opts.Highlight {
			s = s.Reverse(true).Bold(true)
		}
		styles[it.ID] = s
	}
	return styles
}

func roundUnit(v float64) int {
	return int(math.Round(v))
}
