package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "sabot.dev/pkg/sabot/internal/model"
)

func TestParseShardFlag(t *testing.T) {
	tests := []struct {
		name      string
		shard     string
		wantIndex int
		wantTotal int
	}{
		{"empty means the whole run", "", 0, 1},
		{"first of three", "0/3", 0, 3},
		{"middle of three", "1/3", 1, 3},
		{"last of three", "2/3", 2, 3},
		{"garbage falls back", "invalid", 0, 1},
		{"spaces are not tolerated", "0 / 2", 0, 1},
		{"zero total falls back", "0/0", 0, 1},
		{"negative total falls back", "0/-1", 0, 1},
		{"negative index falls back", "-1/3", 0, 1},
		{"index at total falls back", "3/3", 0, 1},
		{"index past total falls back", "5/3", 0, 1},
		{"extra segment is ignored", "1/2/3", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIndex, gotTotal := parseShardFlag(tt.shard)
			assert.Equal(t, tt.wantIndex, gotIndex, "index")
			assert.Equal(t, tt.wantTotal, gotTotal, "total")
		})
	}
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"nil args", nil, []m.Path{}},
		{"single pattern", []string{"./..."}, []m.Path{"./..."}},
		{"multiple directories", []string{"./cmd", "./pkg"}, []m.Path{"./cmd", "./pkg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePaths(tt.args))
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "sabot", cmd.Use)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{outputFlagName, excludeFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "persistent flag %s", name)
	}
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"run", "list", "view", "merge", "init", "version"} {
		assert.True(t, slices.Contains(names, want), "missing subcommand %s in %v", want, names)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "Supports Go-style path patterns")
}

func TestInit_WiresDependencies(t *testing.T) {
	deps := map[string]any{
		"ui":              ui,
		"fsAdapter":       fsAdapter,
		"languageAdapter": languageAdapter,
		"reportStore":     reportStore,
		"testAdapter":     testAdapter,
		"patcher":         patcher,
		"scheduler":       scheduler,
		"workflow":        workflow,
	}

	for name, dep := range deps {
		assert.NotNil(t, dep, name)
	}
}

// swapRootCmd installs a stand-in root for Execute tests and restores
// the real one afterwards.
func swapRootCmd(t *testing.T, stub *cobra.Command) {
	t.Helper()

	original := rootCmd
	rootCmd = stub
	t.Cleanup(func() { rootCmd = original })
}

func TestExecute_Succeeds(t *testing.T) {
	stub := &cobra.Command{
		Use:  "stub",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	stub.SetOut(&bytes.Buffer{})
	stub.SetErr(&bytes.Buffer{})
	stub.SetArgs([]string{})
	swapRootCmd(t, stub)

	Execute()
}

// Execute calls os.Exit on failure, so the exit codes are observed from
// a child process re-running this test with a probe marker set.
func TestExecute_ExitCodes(t *testing.T) {
	if marker := os.Getenv("SABOT_EXECUTE_PROBE"); marker != "" {
		stub := &cobra.Command{
			Use: "stub",
			RunE: func(*cobra.Command, []string) error {
				if marker == "fail" {
					return fmt.Errorf("probe failure")
				}

				fmt.Println("probe success")

				return nil
			},
		}
		stub.SetOut(os.Stdout)
		stub.SetErr(os.Stderr)
		// Without explicit args cobra would parse the test binary's
		// -test.run flag from os.Args.
		stub.SetArgs([]string{})
		rootCmd = stub

		Execute()

		return
	}

	tests := []struct {
		name     string
		marker   string
		wantExit int
		wantOut  string
	}{
		{"success exits zero", "ok", 0, "probe success"},
		{"failure exits one", "fail", 1, "probe failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ExitCodes")
			cmd.Env = append(os.Environ(), "SABOT_EXECUTE_PROBE="+tt.marker)

			output, err := cmd.CombinedOutput()

			if tt.wantExit == 0 {
				require.NoError(t, err, "output: %s", output)
			} else {
				var exitErr *exec.ExitError
				require.ErrorAs(t, err, &exitErr, "output: %s", output)
				assert.Equal(t, tt.wantExit, exitErr.ExitCode())
			}

			assert.Contains(t, string(output), tt.wantOut)
		})
	}
}
