package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
	"github.com/resolvehq/resolve/internal/domain"
)

func init() {
	leaderboardCmd.Flags().StringVar(&leaderboardPeriod, "period", "all", "Ranking period: all or monthly")
	rootCmd.AddCommand(leaderboardCmd)
}

var leaderboardPeriod string

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <group-id>",
	Short: "Show a group's ranked leaderboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeaderboard,
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	period := domain.Period(strings.ToUpper(leaderboardPeriod))
	if period != domain.PeriodAllTime && period != domain.PeriodMonthly {
		return fmt.Errorf("unknown period %q (use all or monthly)", leaderboardPeriod)
	}

	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	ranked, err := d.Tracker.Leaderboard(args[0], period)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tSCORE\tSTREAK\tLABEL")
	for _, ru := range ranked {
		score := ru.User.Score
		if period == domain.PeriodMonthly {
			score = ru.User.MonthlyScore
		}
		marker := ""
		switch ru.User.RankChange {
		case domain.RankUp:
			marker = " ^"
		case domain.RankDown:
			marker = " v"
		}
		fmt.Fprintf(w, "%d%s\t%s\t%.1f\t%d\t%s\n",
			ru.Rank, marker, ru.User.Name, score, ru.User.Streak, ru.User.SeasonalLabel)
	}
	return w.Flush()
}
