package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warfront",
	Short: "Command your armies in the Warfront theater",
	Long: `warfront is a terminal client for the Warfront battle server.
It lets you sign up as a commander, muster armies from the unit catalog,
send them into battle, and follow the leaderboard.

Run 'warfront play' for the interactive terminal UI, or use the
subcommands directly for scripting.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Warfront API base URL (overrides config)")
}
