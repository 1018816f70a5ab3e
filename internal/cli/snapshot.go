package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlayout/gridarb/pkg/store"
)

// newSnapshotCmd creates the snapshot command group for saving, restoring,
// listing, and deleting named layout snapshots.
func newSnapshotCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage named layout snapshots",
		Long: `Snapshot saves an arrangement under a name so it can be restored
later, independent of the layout file it came from. Snapshots live in
~/.config/gridarb/snapshots/ unless --dir overrides the location.

Examples:
  gridarb snapshot save dashboard.json monday
  gridarb snapshot restore monday -o dashboard.json
  gridarb snapshot list
  gridarb snapshot delete monday`,
	}

	cmd.PersistentFlags().StringVar(&dir, "dir", "", "snapshot directory (defaults to the user config dir)")

	cmd.AddCommand(snapshotSaveCmd(&dir))
	cmd.AddCommand(snapshotRestoreCmd(&dir))
	cmd.AddCommand(snapshotListCmd(&dir))
	cmd.AddCommand(snapshotDeleteCmd(&dir))

	return cmd
}

func snapshotSaveCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "save <layout-file> <name>",
		Short: "Save a layout under a snapshot name",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			s, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			snap, err := s.Save(c.Context(), args[1], doc)
			if err != nil {
				return err
			}
			printSuccess("Saved %s (%d panels)", StyleValue.Render(snap.Name), len(snap.Document.Layout))
			return nil
		},
	}
}

func snapshotRestoreCmd(dir *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "restore <name>",
		Short: "Restore a snapshot to a layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			snap, err := s.Load(c.Context(), args[0])
			if err != nil {
				return err
			}
			return saveDocument(snap.Document, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func snapshotListCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			snaps, err := s.List(c.Context())
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				printInfo("No snapshots in %s", s.Path())
				return nil
			}
			for _, snap := range snaps {
				fmt.Printf("%s  %s  %s\n",
					StyleValue.Render(snap.Name),
					StyleDim.Render(snap.SavedAt.Local().Format("2006-01-02 15:04")),
					StyleDim.Render(fmt.Sprintf("%d panels", len(snap.Document.Layout))))
			}
			return nil
		},
	}
}

func snapshotDeleteCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			s, err := store.NewFileStore(*dir)
			if err != nil {
				return err
			}
			if err := s.Delete(c.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
