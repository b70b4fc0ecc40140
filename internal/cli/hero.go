package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
)

func init() {
	rootCmd.AddCommand(heroCmd)
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().IntVar(&feedLimit, "limit", 20, "Maximum events to show")
}

var heroCmd = &cobra.Command{
	Use:   "hero <group-id>",
	Short: "Show (and select, if due) today's daily hero",
	Args:  cobra.ExactArgs(1),
	RunE:  runHero,
}

func runHero(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	heroID, err := d.Tracker.DailyHero(args[0])
	if err != nil {
		return err
	}
	if heroID == "" {
		fmt.Println("No daily hero today.")
		return nil
	}

	u, err := d.DB.User(heroID)
	if err != nil {
		return err
	}
	fmt.Printf("Daily Hero: %s (%s)\n", u.Name, u.ID)
	return nil
}

var feedLimit int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show recent group activity",
	RunE:  runFeed,
}

func runFeed(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	events, err := d.DB.Feed(feedLimit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}

	for _, e := range events {
		fmt.Printf("%s  [%s]  %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Type, e.Message)
	}
	return nil
}
