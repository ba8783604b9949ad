package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/catalog"
	"github.com/felixgeelhaar/warfront/internal/composer"
	"github.com/felixgeelhaar/warfront/internal/log"
	"github.com/felixgeelhaar/warfront/internal/registry"
)

var armyCmd = &cobra.Command{
	Use:   "army",
	Short: "Muster and manage armies",
	Long: `Muster and manage armies on the Warfront API.

Subcommands:
  list      List all registered armies
  create    Muster a new army from the unit catalog
  show      Show one army with its full roster
  disband   Disband an army you no longer need
  catalog   Print the unit catalog

Examples:
  warfront army list
  warfront army create --infantry 2 --tank 1
  warfront army disband 3f2a...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var armyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered armies",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		reg := registry.New(manager.Client(), log.Default())
		if err := reg.Refresh(cmd.Context()); err != nil {
			return err
		}

		armies := reg.Armies()
		if len(armies) == 0 {
			fmt.Println("No armies mustered.")
			return nil
		}
		for _, army := range armies {
			fmt.Printf("%-36s  %-20s %2d units  power %d\n", army.ID, army.PlayerName, len(army.Units), army.TotalPower)
		}
		return nil
	},
}

var armyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Muster a new army from the unit catalog",
	Long: `Muster a new army from the unit catalog. Requires login.

Pass a count per unit type. At least one unit is required.

Examples:
  warfront army create --infantry 2 --tank 1 --aircraft 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		sess, err := requireSession(manager)
		if err != nil {
			return err
		}

		comp := composer.New(sess.User.Name, composer.UUIDSource{})
		for _, unitType := range catalog.Types() {
			count, _ := cmd.Flags().GetInt(string(unitType))
			for i := 0; i < count; i++ {
				comp.AddUnit(unitType)
			}
		}

		cost := comp.TotalCost()
		reg := registry.New(manager.Client(), log.Default())
		if err := comp.Submit(cmd.Context(), reg); err != nil {
			return err
		}

		fmt.Printf("Army mustered for Commander %s (cost %d).\n", sess.User.Name, cost)
		return nil
	},
}

var armyShowCmd = &cobra.Command{
	Use:   "show <army-id>",
	Short: "Show one army with its full roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		army, err := manager.Client().GetArmy(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printArmy(army)
		return nil
	},
}

var armyDisbandCmd = &cobra.Command{
	Use:   "disband <army-id>",
	Short: "Disband an army",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		if _, err := requireSession(manager); err != nil {
			return err
		}

		if err := manager.Client().DeleteArmy(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Army disbanded.")
		return nil
	},
}

var armyCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the unit catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-20s %-10s %5s %5s %5s %5s\n", "UNIT", "TYPE", "ATK", "DEF", "HP", "COST")
		for _, spec := range catalog.All() {
			fmt.Printf("%-20s %-10s %5d %5d %5d %5d\n",
				spec.Name, spec.Type, spec.Attack, spec.Defense, spec.Health, spec.Cost)
		}
		return nil
	},
}

func printArmy(army *api.Army) {
	fmt.Printf("Army %s\n", army.ID)
	fmt.Printf("Commander:   %s\n", army.PlayerName)
	fmt.Printf("Total power: %d\n", army.TotalPower)
	fmt.Printf("Created:     %s\n", army.CreatedAt)
	fmt.Println("Roster:")
	for _, unit := range army.Units {
		fmt.Printf("  %-20s %-10s atk %3d  def %3d  hp %3d\n",
			unit.Name, unit.Type, unit.Attack, unit.Defense, unit.Health)
	}
}

func init() {
	armyCmd.AddCommand(armyListCmd)
	armyCmd.AddCommand(armyCreateCmd)
	armyCmd.AddCommand(armyShowCmd)
	armyCmd.AddCommand(armyDisbandCmd)
	armyCmd.AddCommand(armyCatalogCmd)

	for _, unitType := range []catalog.UnitType{catalog.Infantry, catalog.Tank, catalog.Artillery, catalog.Aircraft} {
		armyCreateCmd.Flags().Int(string(unitType), 0, fmt.Sprintf("number of %s units", unitType))
	}

	rootCmd.AddCommand(armyCmd)
}
