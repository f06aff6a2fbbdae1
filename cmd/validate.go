package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/breach/internal/domain"
	m "github.com/mouse-blink/breach/internal/model"
)

const validateLongDescription = `Validate puzzle documents.

A full document must hold buffer, sequences and code_matrix, and its buffer
must resolve inside the matrix. With --part a single section is checked, given
either as a bare list or inside a document.

A directory argument checks the YAML and JSON files it holds; "dir/..."
includes subdirectories.`

var validatePartFlag string
var validateParallelFlag int

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate PATH...",
		Short: "Validate puzzle documents",
		Long:  validateLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := parsePart(validatePartFlag)
			if err != nil {
				return err
			}

			threads := cfg.Parallel
			if cmd.Flags().Changed("parallel") {
				threads = validateParallelFlag
			}

			return workflow.Validate(cmd.Context(), domain.ValidateArgs{
				Paths:   parsePaths(args),
				Part:    part,
				Threads: threads,
			})
		},
	}
	cmd.Flags().StringVar(&validatePartFlag, "part", string(m.PartDocument), "document|buffer|sequences|code_matrix")
	cmd.Flags().IntVarP(&validateParallelFlag, "parallel", "p", 0, "number of documents validated at once (default from config, 4)")

	return cmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func parsePart(s string) (m.Part, error) {
	for _, part := range m.Parts {
		if string(part) == s {
			return part, nil
		}
	}

	return "", fmt.Errorf("unknown part %q", s)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
