package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
)

func init() {
	archiveCmd.Flags().StringVar(&archiveReason, "reason", "", "Why the resolution is being retired")
	rootCmd.AddCommand(archiveCmd)
}

var archiveReason string

var archiveCmd = &cobra.Command{
	Use:   "archive <resolution-id>",
	Short: "Retire a resolution to the graveyard",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	r, err := d.Tracker.Archive(args[0], archiveReason)
	if err != nil {
		return err
	}

	fmt.Printf("Archived %q\n", r.Title)
	return nil
}
