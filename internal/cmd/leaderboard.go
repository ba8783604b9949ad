package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/warfront/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"lb"},
	Short:   "Show the commander leaderboard",
	Long: `Show the commander leaderboard, ranked by wins.

Examples:
  warfront leaderboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		board := leaderboard.New(manager.Client())
		players, err := board.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(players) == 0 {
			fmt.Println("No commanders ranked yet.")
			return nil
		}

		fmt.Printf("%4s  %-20s %6s %8s %8s\n", "#", "COMMANDER", "WINS", "LOSSES", "BATTLES")
		for i, p := range players {
			fmt.Printf("%4d  %-20s %6d %8d %8d\n", i+1, p.Name, p.Wins, p.Losses, p.TotalBattles)
		}
		return nil
	},
}

var leaderboardPlayerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Show one commander's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		player, err := manager.Client().GetPlayer(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Commander %s\n", player.Name)
		fmt.Printf("Wins:    %d\n", player.Wins)
		fmt.Printf("Losses:  %d\n", player.Losses)
		fmt.Printf("Battles: %d\n", player.TotalBattles)
		return nil
	},
}

func init() {
	leaderboardCmd.AddCommand(leaderboardPlayerCmd)
	rootCmd.AddCommand(leaderboardCmd)
}
