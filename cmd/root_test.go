package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/breach/internal/domain"
	domainmocks "github.com/mouse-blink/breach/internal/domain/mocks"
)

// runCommand executes sub under a fresh root command with the global
// workflow replaced, from an empty working directory.
func runCommand(t *testing.T, wf domain.Workflow, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	originalWorkflow := workflow
	workflow = wf
	t.Cleanup(func() { workflow = originalWorkflow })

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.AddCommand(sub)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "breach", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "log-level", "puzzle"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s flag", name)
	}

	assert.Equal(t, "f", cmd.PersistentFlags().Lookup("puzzle").Shorthand)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	for _, name := range []string{"new", "push", "pop", "inspect", "validate"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_LogLevelFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Pop(domain.PopArgs{Puzzle: "puzzle.yaml", Count: 1}).Return(nil)

	t.Cleanup(func() { logLevel.Set(slog.LevelInfo) })

	_, err := runCommand(t, mockWorkflow, newPopCmd(), "--log-level", "debug", "pop")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, logLevel.Level())
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := runCommand(t, mockWorkflow, newPopCmd(), "--log-level", "loud", "pop")
	require.Error(t, err)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "breach.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("puzzle: saved.json\nlog_level: warn\n"), 0o644))

	t.Cleanup(func() { logLevel.Set(slog.LevelInfo) })

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Pop(domain.PopArgs{Puzzle: "saved.json", Count: 1}).Return(nil)

	_, err := runCommand(t, mockWorkflow, newPopCmd(), "--config", configPath, "pop")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, logLevel.Level())
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	_, err := runCommand(t, mockWorkflow, newPopCmd(), "--config", filepath.Join(t.TempDir(), "absent.yaml"), "pop")
	require.Error(t, err)
}

func TestRootCmd_PuzzleFlagOverridesConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Pop(domain.PopArgs{Puzzle: "other.yaml", Count: 1}).Return(nil)

	_, err := runCommand(t, mockWorkflow, newPopCmd(), "-f", "other.yaml", "pop")
	require.NoError(t, err)
}
