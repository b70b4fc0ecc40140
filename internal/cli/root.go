// Package cli implements the Resolve command-line interface using Cobra.
// Each subcommand maps to one tracker operation (create, checkin, vote, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve — Social accountability for resolutions",
	Long: `Resolve tracks resolutions, daily check-ins, streaks, and scores
for small accountability groups. One binary, local state, optional API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
