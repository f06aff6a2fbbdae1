package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/breach/internal/domain"
)

const pushLongDescription = `Select matrix indices in order.

Even buffer slots read the index as a column, odd slots as a row. Indices that
cannot address the matrix abort the command without saving. Indices pushed
into a full buffer are ignored.`

// pushCmd represents the push command.
var pushCmd = newPushCmd()

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push INDEX...",
		Short: "Select matrix indices",
		Long:  pushLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			indices, err := parseIndices(args)
			if err != nil {
				return err
			}

			return workflow.Push(domain.PushArgs{
				Puzzle:  puzzlePath(),
				Indices: indices,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(pushCmd)
}

func parseIndices(args []string) ([]uint, error) {
	indices := make([]uint, 0, len(args))

	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("index %q must be a non-negative integer", arg)
		}

		indices = append(indices, uint(v))
	}

	return indices, nil
}
