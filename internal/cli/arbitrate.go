package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlayout/gridarb/pkg/errors"
	"github.com/openlayout/gridarb/pkg/grid"
)

// newCompactCmd creates the compact command. It removes vertical gaps from
// a layout file and writes the arbitrated document back out.
func newCompactCmd() *cobra.Command {
	var (
		output     string
		horizontal bool
	)

	cmd := &cobra.Command{
		Use:   "compact <layout-file>",
		Short: "Remove vertical gaps from a layout",
		Long: `Compact pulls every movable panel as far up as collisions allow,
preserving the row-major reading order. Static panels stay in place and
movable panels stack around them.

With --keep-rows only horizontal ordering is normalized; panels keep
their rows.

Examples:
  gridarb compact dashboard.json
  gridarb compact dashboard.toml -o compacted.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			p := newProgress(loggerFromContext(c.Context()))
			doc.Layout = grid.Compact(doc.Layout, !horizontal)
			p.done(fmt.Sprintf("Compacted %d panels", len(doc.Layout)))

			return saveDocument(doc, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&horizontal, "keep-rows", false, "only normalize horizontal order, keep rows")

	return cmd
}

// newBoundsCmd creates the bounds command. It clips a layout into a column
// count, defaulting to the document's own column setting.
func newBoundsCmd() *cobra.Command {
	var (
		output string
		cols   float64
	)

	cmd := &cobra.Command{
		Use:   "bounds <layout-file>",
		Short: "Clip a layout into its column bounds",
		Long: `Bounds pushes every panel back inside the grid columns: panels
hanging past the right edge slide left, panels past the left edge snap to
column zero, and overlaps created by clipping are resolved downward.

Examples:
  gridarb bounds dashboard.json
  gridarb bounds dashboard.json --cols 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			if cols != 0 {
				if err := errors.ValidateColumns(cols); err != nil {
					return err
				}
				doc.Cols = cols
			}

			p := newProgress(loggerFromContext(c.Context()))
			doc.Layout = grid.CorrectBounds(doc.Layout, doc.Cols)
			p.done(fmt.Sprintf("Clipped %d panels into %g columns", len(doc.Layout), doc.Cols))

			return saveDocument(doc, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().Float64Var(&cols, "cols", 0, "override the document column count")

	return cmd
}

// newMoveCmd creates the move command. It moves one panel to a target cell
// and cascades displaced neighbors out of the way.
func newMoveCmd() *cobra.Command {
	var (
		output           string
		x, y             float64
		preventCollision bool
		noCompact        bool
	)

	cmd := &cobra.Command{
		Use:   "move <layout-file> <panel-id>",
		Short: "Move a panel with cascading displacement",
		Long: `Move places the panel at the target cell and pushes colliding
neighbors out of the way, preferring the slot above the moved panel when
one is free. The layout is re-compacted afterwards unless --no-compact is
set.

With --prevent-collision the move is rejected outright if the target cell
is occupied, leaving the layout untouched.

Examples:
  gridarb move dashboard.json chart -x 4 -y 0
  gridarb move dashboard.json chart -y 2 --prevent-collision`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			id := args[1]
			if doc.Layout.Find(id) == nil {
				return errors.New(errors.ErrCodeItemNotFound, "no panel %q in %s", id, args[0])
			}

			to := grid.Position{}
			xSet := c.Flags().Changed("x")
			ySet := c.Flags().Changed("y")
			switch {
			case xSet && ySet:
				to = grid.At(x, y)
			case xSet:
				to = grid.AtX(x)
			case ySet:
				to = grid.AtY(y)
			default:
				return errors.New(errors.ErrCodeInvalidPosition, "at least one of -x or -y is required")
			}

			p := newProgress(loggerFromContext(c.Context()))
			doc.Layout = grid.MoveElement(doc.Layout, id, to, true, preventCollision)
			if !noCompact {
				doc.Layout = grid.Compact(doc.Layout, doc.VerticalCompact)
			}
			p.done(fmt.Sprintf("Moved %s", id))

			return saveDocument(doc, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().Float64VarP(&x, "x", "x", 0, "target column")
	cmd.Flags().Float64VarP(&y, "y", "y", 0, "target row")
	cmd.Flags().BoolVar(&preventCollision, "prevent-collision", false, "reject the move if the target cell is occupied")
	cmd.Flags().BoolVar(&noCompact, "no-compact", false, "skip re-compaction after the move")

	return cmd
}
