package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/resolvehq/resolve/internal/daemon"
	"github.com/resolvehq/resolve/internal/domain"
)

func init() {
	userAddCmd.Flags().StringVar(&userGroup, "group", "", "Group id to join")
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)

	groupCmd.AddCommand(groupAddCmd)
	rootCmd.AddCommand(groupCmd)
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userGroup string

var userAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserAdd,
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	if userGroup != "" {
		if _, err := d.DB.Group(userGroup); err != nil {
			return err
		}
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         args[0],
		GroupID:      userGroup,
		RankChange:   domain.RankSame,
		HonestyScore: 100,
	}
	if err := d.DB.SaveUser(u); err != nil {
		return err
	}

	if userGroup != "" {
		g, err := d.DB.Group(userGroup)
		if err != nil {
			return err
		}
		g.MemberIDs = append(g.MemberIDs, u.ID)
		if err := d.DB.SaveGroup(g); err != nil {
			return err
		}
	}

	fmt.Printf("Added %s (%s)\n", u.Name, u.ID)
	return nil
}

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage groups",
}

var groupAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new accountability group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupAdd,
}

func runGroupAdd(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(rootCmd.Version)
	if err != nil {
		return err
	}
	defer d.Close()

	g := &domain.Group{ID: uuid.NewString(), Name: args[0]}
	if err := d.DB.SaveGroup(g); err != nil {
		return err
	}

	fmt.Printf("Created group %s (%s)\n", g.Name, g.ID)
	return nil
}
