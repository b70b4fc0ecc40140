package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
)

func init() {
	listCmd.Flags().StringVar(&listOwner, "owner", "", "Owner user id (required)")
	listCmd.Flags().BoolVar(&listGraveyard, "graveyard", false, "Show archived resolutions instead")
	listCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(listCmd)
}

var (
	listOwner     string
	listGraveyard bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List a user's resolutions",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	if listGraveyard {
		archived, err := d.Tracker.Graveyard(listOwner)
		if err != nil {
			return err
		}
		if len(archived) == 0 {
			fmt.Println("The graveyard is empty.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tARCHIVED\tREASON")
		for _, r := range archived {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.ID, r.Title, r.ArchivedAt.Format("2006-01-02"), r.ArchivedReason)
		}
		return w.Flush()
	}

	resolutions, err := d.DB.ResolutionsByOwner(listOwner)
	if err != nil {
		return err
	}
	if len(resolutions) == 0 {
		fmt.Println("No resolutions yet. Run 'resolve create' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY\tSTREAK\tTODAY\tHEALTH")
	for _, r := range resolutions {
		if r.Archived() {
			continue
		}
		health, err := d.Tracker.Health(r.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%s\t%s\n",
			r.ID, r.Title, r.EffectiveDifficulty, r.CurrentStreak, r.TodayStatus, health)
	}
	return w.Flush()
}
