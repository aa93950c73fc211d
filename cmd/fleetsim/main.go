// fleetsim is a science fiction fleet battle simulator inspired by Aurora4X.
//
// Usage:
//
//	fleetsim run             - Run turns until one side is eliminated
//
// Environment:
//
//	DATABASE_URL        - SQLite database (sqlite://path, path or :memory:)
//	DB_RESET            - Reset the roster before the first turn (any value but false/0)
//	FLEETSIM_ROSTER     - Path to a YAML roster file
//	FLEETSIM_PRESET     - Embedded roster preset (classic, demo)
//	FLEETSIM_POLICY     - Targeting policy (self, enemy)
//	FLEETSIM_SEED       - RNG seed for reproducible battles
//	FLEETSIM_LOG_LEVEL  - Log level (debug, info, warn, error)
//
// Variables may also be placed in a .env file in the working directory;
// values already set in the environment take precedence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import tactics to register the targeting policies
	_ "github.com/vovakirdan/fleetsim/internal/tactics"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fleetsim",
	Short: "A science fiction game inspired by Aurora4X.",
	Long: `fleetsim is a turn-based fleet battle simulator.

Ships grouped into fleets trade attacks turn after turn until fewer than
two remain. State lives in a SQLite database so a battle can be inspected
between runs.

Examples:
  DATABASE_URL=sqlite://battle.db fleetsim run --reset
  fleetsim run --db ./battle.db --reset --preset demo
  fleetsim run --db ./battle.db --reset --policy enemy --seed 42`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "no command supplied")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
