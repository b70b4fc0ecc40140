package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
)

func init() {
	createCmd.Flags().StringVar(&createOwner, "owner", "", "Owner user id (required)")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Category label")
	createCmd.Flags().IntVar(&createDifficulty, "difficulty", 3, "Declared difficulty (1-5)")
	createCmd.Flags().BoolVar(&createPrivate, "private", false, "Track privately (no scoring, no votes)")
	createCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(createCmd)
}

var (
	createOwner      string
	createCategory   string
	createDifficulty int
	createPrivate    bool
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new resolution",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	r, err := d.Tracker.CreateResolution(createOwner, args[0], createCategory, createDifficulty, createPrivate)
	if err != nil {
		return err
	}

	fmt.Printf("Created %q (%s)\n", r.Title, r.ID)
	fmt.Printf("  Difficulty: %d  Private: %v\n", r.DeclaredDifficulty, r.IsPrivate)
	return nil
}
