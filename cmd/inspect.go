package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/breach/internal/domain"
	m "github.com/mouse-blink/breach/internal/model"
)

var inspectContainsFlag string

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the puzzle state",
		Long:  "Show the code matrix, the buffer slots with their resolved coordinates, and the target sequences.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			args := domain.InspectArgs{Puzzle: puzzlePath()}

			if inspectContainsFlag != "" {
				coord, err := parseCoord(inspectContainsFlag)
				if err != nil {
					return err
				}

				args.Contains = &coord
			}

			return workflow.Inspect(args)
		},
	}
	cmd.Flags().StringVar(&inspectContainsFlag, "contains", "", "report whether the buffer holds ROW,COL")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func parseCoord(s string) (m.Coord, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return m.Coord{}, fmt.Errorf("coordinate %q must be ROW,COL", s)
	}

	row, err := strconv.ParseUint(strings.TrimSpace(rowStr), 10, 0)
	if err != nil {
		return m.Coord{}, fmt.Errorf("coordinate %q: bad row: %w", s, err)
	}

	col, err := strconv.ParseUint(strings.TrimSpace(colStr), 10, 0)
	if err != nil {
		return m.Coord{}, fmt.Errorf("coordinate %q: bad column: %w", s, err)
	}

	return m.Coord{Row: uint(row), Col: uint(col)}, nil
}
