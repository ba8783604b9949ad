package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/warfront/internal/battle"
	"github.com/felixgeelhaar/warfront/internal/log"
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Send armies into battle",
	Long: `Send armies into battle and review past engagements.

Subcommands:
  engage   Resolve a battle between two armies
  list     List past battles, newest first
  show     Show one battle with its full log

Examples:
  warfront battle engage --army-a 3f2a... --army-b 9c1d...
  warfront battle list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var battleEngageCmd = &cobra.Command{
	Use:   "engage",
	Short: "Resolve a battle between two armies",
	Long: `Resolve a battle between two armies. Requires login.

The server simulates the battle and reports the winner along with a
round-by-round battle log.

Examples:
  warfront battle engage --army-a 3f2a... --army-b 9c1d...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		armyA, _ := cmd.Flags().GetString("army-a")
		armyB, _ := cmd.Flags().GetString("army-b")

		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		if _, err := requireSession(manager); err != nil {
			return err
		}

		orch := battle.New(manager.Client(), log.Default())
		orch.Select(battle.SlotA, armyA)
		orch.Select(battle.SlotB, armyB)
		if err := orch.Engage(cmd.Context()); err != nil {
			return err
		}

		result := orch.LastResult()
		fmt.Printf("%s vs %s\n\n", result.Army1Name, result.Army2Name)
		for _, line := range result.BattleLog {
			fmt.Println(line)
		}
		fmt.Printf("\n%s is victorious!\n", result.WinnerName)
		return nil
	},
}

var battleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past battles, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		battles, err := manager.Client().ListBattles(cmd.Context())
		if err != nil {
			return err
		}
		if len(battles) == 0 {
			fmt.Println("No battles fought yet.")
			return nil
		}
		for _, b := range battles {
			fmt.Printf("%-36s  %s vs %s — winner %s\n", b.ID, b.Army1Name, b.Army2Name, b.WinnerName)
		}
		return nil
	},
}

var battleShowCmd = &cobra.Command{
	Use:   "show <battle-id>",
	Short: "Show one battle with its full log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		b, err := manager.Client().GetBattle(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s vs %s (%s)\n\n", b.Army1Name, b.Army2Name, b.CreatedAt)
		for _, line := range b.BattleLog {
			fmt.Println(line)
		}
		fmt.Printf("\nWinner: %s\n", b.WinnerName)
		return nil
	},
}

func init() {
	battleCmd.AddCommand(battleEngageCmd)
	battleCmd.AddCommand(battleListCmd)
	battleCmd.AddCommand(battleShowCmd)

	battleEngageCmd.Flags().String("army-a", "", "Army id for side A (required)")
	battleEngageCmd.Flags().String("army-b", "", "Army id for side B (required)")

	rootCmd.AddCommand(battleCmd)
}
