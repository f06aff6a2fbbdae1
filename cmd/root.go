// Package cmd provides the root command and CLI setup for breach.
package cmd

import (
	"log/slog"
	"os"

	"github.com/mouse-blink/breach/internal/adapter"
	"github.com/mouse-blink/breach/internal/config"
	"github.com/mouse-blink/breach/internal/controller"
	"github.com/mouse-blink/breach/internal/domain"
	m "github.com/mouse-blink/breach/internal/model"
	"github.com/spf13/cobra"
)

var puzzleStore adapter.PuzzleStore
var ui controller.UI
var workflow domain.Workflow
var logLevel = new(slog.LevelVar)
var cfg = config.Default()

func init() {
	ui = controller.NewSimpleUI(rootCmd)
	puzzleStore = adapter.NewLocalPuzzleStore(adapter.NewDocumentCodec())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	workflow = domain.NewWorkflow(puzzleStore, ui, logger)
}

var configFlag string
var logLevelFlag string
var puzzleFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breach",
		Short: "Grid selection puzzle engine",
		Long: `Breach keeps the state of a grid selection puzzle in a YAML or JSON document.

Picks alternate between axes: the first index selects a column in row 0, the
next selects a row in that column, the next a column in that row, and so on
until the buffer is full.

  breach new --matrix matrix.yaml --capacity 5
  breach push 1 3
  breach pop
  breach inspect --contains 3,1
  breach validate puzzles/*.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			cfg = loaded

			levelName := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				levelName = logLevelFlag
			}

			level, err := config.ParseLevel(levelName)
			if err != nil {
				return err
			}

			logLevel.Set(level)

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default "+config.DefaultPath+" if present)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "debug|info|warn|error")
	cmd.PersistentFlags().StringVarP(&puzzleFlag, "puzzle", "f", "", "puzzle document (default from config, puzzle.yaml)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// puzzlePath resolves the --puzzle flag against the loaded config.
func puzzlePath() m.Path {
	if puzzleFlag != "" {
		return m.Path(puzzleFlag)
	}

	return m.Path(cfg.Puzzle)
}
