package ghoutput

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWrite appends sorted, sanitized outputs to GITHUB_OUTPUT.
func TestWrite(t *testing.T) { //nolint:paralleltest // mutates process env
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	t.Setenv("GITHUB_OUTPUT", path)

	err := Write(map[string]string{
		"skipped": "graphviz",
		"applied": "line1\nline2",
	})
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "applied=line1%0Aline2\nskipped=graphviz\n", string(contents))
}

// TestWriteNoEnv is a no-op outside of GitHub Actions.
func TestWriteNoEnv(t *testing.T) { //nolint:paralleltest // mutates process env
	t.Setenv("GITHUB_OUTPUT", "")
	require.NoError(t, Write(map[string]string{"applied": "graphviz"}))
}

// TestWriteSummary appends markdown to GITHUB_STEP_SUMMARY.
func TestWriteSummary(t *testing.T) { //nolint:paralleltest // mutates process env
	path := filepath.Join(t.TempDir(), "summary")
	t.Setenv("GITHUB_STEP_SUMMARY", path)

	require.NoError(t, WriteSummary("### report"))
	require.NoError(t, WriteSummary(""))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "### report\n", string(contents))
}
