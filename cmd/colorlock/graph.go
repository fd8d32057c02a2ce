package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nrgrid/colorlock/cli/puzzlefile"
	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/gridexport"
	"github.com/nrgrid/colorlock/solver"
)

var graphCmd = &cobra.Command{
	Use:   "graph <puzzle.json>",
	Short: "Emit a puzzle's initial walkable topology as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := puzzlefile.Load(args[0])
		if err != nil {
			return fmt.Errorf("graph: %w", err)
		}

		s, err := solver.New(p.Walls, p.Active, p.Buttons, p.WallColors, p.ButtonColors, p.TargetRow, p.TargetCol)
		if err != nil {
			return fmt.Errorf("graph: %w", err)
		}

		cg := gridexport.Graph(s.Grid(), grid.ToggleState(0))
		fmt.Print(cg.DOT())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
