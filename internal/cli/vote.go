package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
)

func init() {
	voteCmd.Flags().StringVar(&voteVoter, "voter", "", "Voting user id (required)")
	voteCmd.MarkFlagRequired("voter")
	rootCmd.AddCommand(voteCmd)
}

var voteVoter string

var voteCmd = &cobra.Command{
	Use:   "vote <resolution-id> <1-5>",
	Short: "Cast a peer difficulty vote",
	Args:  cobra.ExactArgs(2),
	RunE:  runVote,
}

func runVote(cmd *cobra.Command, args []string) error {
	var vote int
	if _, err := fmt.Sscanf(args[1], "%d", &vote); err != nil {
		return fmt.Errorf("vote must be a number: %w", err)
	}

	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	r, err := d.Tracker.VoteDifficulty(args[0], voteVoter, vote)
	if err != nil {
		return err
	}

	fmt.Printf("%s: effective difficulty now %.1f\n", r.Title, r.EffectiveDifficulty)
	return nil
}
