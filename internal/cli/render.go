package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlayout/gridarb/pkg/render/ascii"
)

// newRenderCmd creates the render command. It prints an ASCII preview of
// the layout grid, one character cell per occupied grid unit.
func newRenderCmd() *cobra.Command {
	var (
		plain     bool
		cellWidth int
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "render <layout-file>",
		Short: "Print an ASCII preview of a layout",
		Long: `Render paints the layout as a character grid: each panel is drawn
with the first rune of its id, empty cells with a dot. Static panels are
dimmed unless --plain is set.

Examples:
  gridarb render dashboard.json
  gridarb render dashboard.json --highlight chart --cell-width 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			fmt.Print(ascii.Render(doc.Layout, ascii.Options{
				Cols:      doc.Cols,
				Styled:    !plain,
				CellWidth: cellWidth,
				Highlight: highlight,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "disable color output")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 0, "characters per grid cell (default 2)")
	cmd.Flags().StringVar(&highlight, "highlight", "", "panel id to highlight")

	return cmd
}
