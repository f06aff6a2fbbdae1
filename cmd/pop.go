package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/breach/internal/domain"
)

var popCountFlag int

// popCmd represents the pop command.
var popCmd = newPopCmd()

func newPopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pop",
		Short: "Undo the most recent selections",
		Long:  "Undo the most recent selections, stopping early when the buffer is empty.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Pop(domain.PopArgs{
				Puzzle: puzzlePath(),
				Count:  popCountFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&popCountFlag, "count", "n", 1, "number of selections to undo")

	return cmd
}

func init() {
	rootCmd.AddCommand(popCmd)
}
