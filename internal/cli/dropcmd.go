package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openlayout/gridarb/pkg/errors"
	"github.com/openlayout/gridarb/pkg/grid/drop"
)

// newDropCmd creates the drop command. It classifies a drop pointer against
// the layout and, unless --classify-only is set, applies the resulting
// placement.
func newDropCmd() *cobra.Command {
	var (
		output       string
		classifyOnly bool
	)

	cmd := &cobra.Command{
		Use:   "drop <layout-file> <panel-id> <x> <y>",
		Short: "Resolve a drag-drop pointer into a new arrangement",
		Long: `Drop interprets the pointer position over the layout: releasing a
panel over the center of another swaps the two, releasing it over an edge
splits the target and slides the dropped panel into the freed half.

The pointer coordinates are grid units. With --classify-only the command
prints the placement decision without changing the layout.

Examples:
  gridarb drop dashboard.json chart 5 1
  gridarb drop dashboard.json chart 5 1 --classify-only`,
		Args: cobra.ExactArgs(4),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			id := args[1]
			if doc.Layout.Find(id) == nil {
				return errors.New(errors.ErrCodeItemNotFound, "no panel %q in %s", id, args[0])
			}

			px, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPosition, err, "parse x %q", args[2])
			}
			py, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPosition, err, "parse y %q", args[3])
			}
			if err := errors.ValidatePoint(px, py); err != nil {
				return err
			}

			ph := drop.ClassifyPointer(doc.Layout, id, px, py)
			if ph == nil {
				printInfo("Pointer (%g,%g) hits no drop target; layout unchanged", px, py)
				if classifyOnly {
					return nil
				}
				return saveDocument(doc, output)
			}

			printInfo("Target %s, position %s, placeholder (%g,%g %gx%g)",
				StyleValue.Render(ph.TargetID), StyleHighlight.Render(string(ph.Pos)),
				ph.X, ph.Y, ph.W, ph.H)
			if classifyOnly {
				return nil
			}

			p := newProgress(loggerFromContext(c.Context()))
			doc.Layout = drop.ApplyDrop(doc.Layout, id, ph)
			p.done(fmt.Sprintf("Dropped %s %s of %s", id, ph.Pos, ph.TargetID))

			return saveDocument(doc, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&classifyOnly, "classify-only", false, "print the placement decision without applying it")

	return cmd
}
