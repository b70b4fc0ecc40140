package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
	"github.com/resolvehq/resolve/internal/domain"
)

func init() {
	rootCmd.AddCommand(checkinCmd)
}

var checkinCmd = &cobra.Command{
	Use:   "checkin <resolution-id> <completed|missed|unchecked>",
	Short: "Record today's status for a resolution",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheckin,
}

func runCheckin(cmd *cobra.Command, args []string) error {
	status := domain.Status(strings.ToUpper(args[1]))
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}

	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	r, err := d.Tracker.CheckIn(args[0], status)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", r.Title, r.TodayStatus)
	if r.CurrentStreak > 0 {
		fmt.Printf("  Streak: %d day(s)\n", r.CurrentStreak)
	}
	return nil
}
