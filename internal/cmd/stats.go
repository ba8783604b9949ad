package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show theater-wide statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		stats, err := manager.Client().GetStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Commanders: %d\n", stats.TotalPlayers)
		fmt.Printf("Armies:     %d\n", stats.TotalArmies)
		fmt.Printf("Battles:    %d\n", stats.TotalBattles)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
