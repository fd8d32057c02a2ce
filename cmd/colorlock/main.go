// Command colorlock loads a puzzle file, solves it, and reports or
// visualizes the result.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nrgrid/colorlock/cli/clilog"
	"github.com/nrgrid/colorlock/solver"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "colorlock",
	Short:   "Solve color-lock grid puzzles",
	Version: solver.Version(),
	Long: `colorlock finds the shortest sequence of moves and button presses
that gets an agent from a start cell to a target cell through a grid of
color-coded walls and the buttons that toggle them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		clilog.VerboseEnabled = verbose
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
