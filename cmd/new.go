package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/breach/internal/domain"
	m "github.com/mouse-blink/breach/internal/model"
)

const newLongDescription = `Create a puzzle document with an empty buffer.

The matrix file holds either a bare list of rows or a full puzzle document
whose code_matrix is reused. The sequences file works the same way.`

var newMatrixFlag string
var newSequencesFlag string
var newCapacityFlag int

// newCmd represents the new command.
var newCmd = newNewCmd()

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a puzzle from a code matrix",
		Long:  newLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			capacity := cfg.Capacity
			if cmd.Flags().Changed("capacity") {
				capacity = newCapacityFlag
			}

			return workflow.New(domain.NewArgs{
				Matrix:    m.Path(newMatrixFlag),
				Sequences: m.Path(newSequencesFlag),
				Capacity:  capacity,
				Puzzle:    puzzlePath(),
			})
		},
	}
	cmd.Flags().StringVarP(&newMatrixFlag, "matrix", "m", "", "file holding the code matrix")
	cmd.Flags().StringVarP(&newSequencesFlag, "sequences", "s", "", "file holding the target sequences")
	cmd.Flags().IntVarP(&newCapacityFlag, "capacity", "c", 0, "buffer capacity (default from config, 5)")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCmd)
}
