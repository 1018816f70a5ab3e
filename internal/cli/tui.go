package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/openlayout/gridarb/pkg/grid"
	"github.com/openlayout/gridarb/pkg/layoutio"
	"github.com/openlayout/gridarb/pkg/render/ascii"
)

// =============================================================================
// ArrangeModel - Interactive layout arrangement
// =============================================================================

// ArrangeModel is the bubbletea model for interactive panel arrangement.
// Arrow keys move the selected panel one grid unit; displaced neighbors
// cascade out of the way exactly as they would under a drag.
type ArrangeModel struct {
	Doc      *layoutio.Document
	Selected int  // index into the sorted id list
	Compact  bool // re-compact after every move
	Dirty    bool // unsaved changes
	Saved    bool // save requested on quit
	status   string
}

// NewArrangeModel creates an arrangement model for doc.
// Compaction starts enabled when the document asks for vertical compaction.
func NewArrangeModel(doc *layoutio.Document) ArrangeModel {
	return ArrangeModel{
		Doc:     doc,
		Compact: doc.VerticalCompact,
	}
}

// selectedID returns the id of the currently selected panel, or "" for an
// empty layout.
func (m ArrangeModel) selectedID() string {
	ids := m.Doc.Layout.IDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[m.Selected%len(ids)]
}

func (m ArrangeModel) Init() tea.Cmd {
	return nil
}

func (m ArrangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s":
		m.Saved = true
		return m, tea.Quit
	case "tab", "n":
		if n := len(m.Doc.Layout); n > 0 {
			m.Selected = (m.Selected + 1) % n
			m.status = ""
		}
	case "c":
		m.Compact = !m.Compact
		if m.Compact {
			m.Doc.Layout = grid.Compact(m.Doc.Layout, true)
			m.Dirty = true
		}
	case "up":
		m = m.move(0, -1)
	case "down":
		m = m.move(0, 1)
	case "left":
		m = m.move(-1, 0)
	case "right":
		m = m.move(1, 0)
	}
	return m, nil
}

// move shifts the selected panel by (dx, dy) grid units, cascading
// neighbors and clipping the result back into the column bounds.
func (m ArrangeModel) move(dx, dy float64) ArrangeModel {
	id := m.selectedID()
	if id == "" {
		return m
	}
	it := m.Doc.Layout.Find(id)
	if it.Static {
		m.status = fmt.Sprintf("%s is static", id)
		return m
	}

	x, y := it.X+dx, it.Y+dy
	if y < 0 {
		y = 0
	}

	l := grid.MoveElement(m.Doc.Layout, id, grid.At(x, y), true, false)
	l = grid.CorrectBounds(l, m.Doc.Cols)
	if m.Compact {
		l = grid.Compact(l, true)
	}
	m.Doc.Layout = l
	m.Dirty = true
	m.status = ""
	return m
}

func (m ArrangeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Arrange Layout"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→ move  ⇥ next panel  c compaction  s save+quit  q quit"))
	b.WriteString("\n\n")

	b.WriteString(ascii.Render(m.Doc.Layout, ascii.Options{
		Cols:      m.Doc.Cols,
		Styled:    true,
		Highlight: m.selectedID(),
	}))
	b.WriteString("\n")

	if id := m.selectedID(); id != "" {
		it := m.Doc.Layout.Find(id)
		line := fmt.Sprintf("selected %s at (%g,%g) %gx%g",
			StyleHighlight.Render(id), it.X, it.Y, it.W, it.H)
		if it.Static {
			line += styleStatic.Render(" [static]")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	compaction := "off"
	if m.Compact {
		compaction = "on"
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("compaction %s", compaction)))
	if m.Dirty {
		b.WriteString(StyleWarning.Render("  unsaved changes"))
	}
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(StyleWarning.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// tui command
// =============================================================================

// newTUICmd creates the tui command, an interactive arrangement session
// over a layout file.
func newTUICmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tui <layout-file>",
		Short: "Arrange a layout interactively",
		Long: `Tui opens an interactive arrangement session: select a panel,
move it with the arrow keys, and watch neighbors cascade out of the way.
Press s to save the result and quit, q to discard.

Example:
  gridarb tui dashboard.json -o arranged.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewArrangeModel(doc)).Run()
			if err != nil {
				return err
			}

			m := final.(ArrangeModel)
			if !m.Saved {
				if m.Dirty {
					printInfo("Discarded changes")
				}
				return nil
			}

			if output == "" {
				output = args[0]
			}
			return saveDocument(m.Doc, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to the input file)")

	return cmd
}
