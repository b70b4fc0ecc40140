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
	reportCmd.Flags().StringVar(&reportType, "type", "weekly", "Report window: weekly, monthly, or yearly")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(breakdownCmd)
}

var reportType string

var reportCmd = &cobra.Command{
	Use:   "report <user-id>",
	Short: "Show a user's periodic consistency report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	typ := domain.ReportType(strings.ToUpper(reportType))
	switch typ {
	case domain.ReportWeekly, domain.ReportMonthly, domain.ReportYearly:
	default:
		return fmt.Errorf("unknown report type %q (use weekly, monthly, or yearly)", reportType)
	}

	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	rep, err := d.Tracker.Report(args[0], typ)
	if err != nil {
		return err
	}

	fmt.Printf("Report: %s\n", rep.PeriodLabel)
	fmt.Printf("  Days checked in:  %d\n", rep.DaysCheckedIn)
	fmt.Printf("  Points gained:    %.1f\n", rep.PointsGained)
	fmt.Printf("  Consistency:      %d%%\n", rep.Consistency)
	if rep.BestResolution != "" {
		fmt.Printf("  Best resolution:  %s\n", rep.BestResolution)
	}
	if rep.WorstResolution != "" {
		fmt.Printf("  Worst resolution: %s\n", rep.WorstResolution)
	}
	if rep.GroupHero != "" {
		fmt.Printf("  Group consistency: %d%%  (hero: %s)\n", rep.GroupConsistency, rep.GroupHero)
	}
	return nil
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <user-id>",
	Short: "Show a user's per-resolution score contributions",
	Args:  cobra.ExactArgs(1),
	RunE:  runBreakdown,
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	rows, err := d.Tracker.Breakdown(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("Nothing scored yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tDAYS\tDIFFICULTY\tPOINTS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\n", row.Title, row.Days, row.Difficulty, row.Points)
	}
	return w.Flush()
}
