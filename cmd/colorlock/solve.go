package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nrgrid/colorlock/cli/clilog"
	"github.com/nrgrid/colorlock/cli/puzzlefile"
	"github.com/nrgrid/colorlock/solver"
)

var (
	solveStartRow int
	solveStartCol int
	solveNoSpin   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle.json>",
	Short: "Solve a puzzle file and print the resulting path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		clilog.Verbose("loading puzzle from %s", path)

		p, err := puzzlefile.Load(path)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		s, err := solver.New(p.Walls, p.Active, p.Buttons, p.WallColors, p.ButtonColors, p.TargetRow, p.TargetCol)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		startRow, startCol := p.StartRow, p.StartCol
		if cmd.Flags().Changed("start-row") {
			startRow = solveStartRow
		}
		if cmd.Flags().Changed("start-col") {
			startCol = solveStartCol
		}

		var spin *uiSpinner
		if !solveNoSpin {
			spin = newSpinner("searching")
			spin.Start()
		}
		path2, err := s.SolveErr(startRow, startCol)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		if len(path2) == 0 {
			clilog.Info("no solution")
			return nil
		}

		clilog.Info("found a %d-move path:", len(path2)-1)
		for i, c := range path2 {
			clilog.Info("  %d: (%d,%d)", i, c.Row, c.Col)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().IntVar(&solveStartRow, "start-row", 0, "override the puzzle file's start row")
	solveCmd.Flags().IntVar(&solveStartCol, "start-col", 0, "override the puzzle file's start column")
	solveCmd.Flags().BoolVar(&solveNoSpin, "no-spinner", false, "disable the progress spinner")
	rootCmd.AddCommand(solveCmd)
}
