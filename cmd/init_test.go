package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chtemp switches the working directory to a fresh temp dir for the
// duration of the test. The init command always writes relative to cwd.
func chtemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func execInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"init"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chtemp(t)

	out, err := execInit(t)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote")
	require.Contains(t, out, configFileName)

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	require.Contains(t, string(contents), "run:")
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	tempDir := chtemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := execInit(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
	require.Contains(t, err.Error(), "--force")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	require.Equal(t, "existing: true\n", string(contents), "refused init must not touch the file")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tempDir := chtemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	out, err := execInit(t, "--force")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	require.NotContains(t, string(contents), "existing: true")
	require.Contains(t, string(contents), "run:")
}
