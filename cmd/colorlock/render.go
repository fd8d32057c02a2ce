package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nrgrid/colorlock/cli/puzzlefile"
	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/solver"
)

var renderShowPath bool

var renderCmd = &cobra.Command{
	Use:   "render <puzzle.json>",
	Short: "Render a puzzle's initial state as a colorized ASCII grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := puzzlefile.Load(args[0])
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		s, err := solver.New(p.Walls, p.Active, p.Buttons, p.WallColors, p.ButtonColors, p.TargetRow, p.TargetCol)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		var path []solver.Cell
		if renderShowPath {
			path = s.Solve(p.StartRow, p.StartCol)
		}

		fmt.Print(renderGrid(s.Grid(), path))
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderShowPath, "show-path", false, "solve the puzzle and highlight the resulting path")
	rootCmd.AddCommand(renderCmd)
}

// renderGrid draws g at toggle state zero: '#' for an active wall, a digit
// for a button (its color id), '*' for the target, a highlighted '+' for a
// cell on path, '.' otherwise.
func renderGrid(g *grid.Grid, path []solver.Cell) string {
	wall := color.New(color.FgRed, color.Bold)
	button := color.New(color.FgYellow)
	target := color.New(color.FgGreen, color.Bold)
	onPath := color.New(color.FgCyan, color.Bold)

	pathCells := make(map[grid.Position]bool, len(path))
	for _, c := range path {
		pathCells[grid.NewPosition(c.Row, c.Col)] = true
	}

	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		blocked := g.BlockedRow(grid.ToggleState(0), row)
		buttons := g.ButtonMask(row)
		for col := 0; col < g.Cols(); col++ {
			pos := grid.NewPosition(row, col)
			bit := uint64(1) << uint(col)
			switch {
			case pos == g.TargetPos():
				b.WriteString(target.Sprint("*"))
			case blocked&bit != 0:
				b.WriteString(wall.Sprint("#"))
			case buttons&bit != 0:
				cid := g.CellColor(pos)
				b.WriteString(button.Sprintf("%d", cid))
			case pathCells[pos]:
				b.WriteString(onPath.Sprint("+"))
			default:
				b.WriteString(".")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
