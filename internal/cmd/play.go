package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/warfront/internal/log"
	"github.com/felixgeelhaar/warfront/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI.

The UI covers the full client: home screen with theater stats,
leaderboard, army mustering, and the battle view. A saved session is
restored automatically.

Examples:
  warfront play`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		return tui.Run(manager, log.Default())
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
