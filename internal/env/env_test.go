package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseInline covers valid lists and malformed entries.
func TestParseInline(t *testing.T) {
	t.Parallel()

	vars, err := ParseInline("UBUNTU_VERSION=20.04, EXTRA=1")
	require.NoError(t, err)
	require.Equal(t, Vars{"UBUNTU_VERSION": "20.04", "EXTRA": "1"}, vars)

	vars, err = ParseInline("   ")
	require.NoError(t, err)
	require.Empty(t, vars)

	_, err = ParseInline("novalue")
	require.Error(t, err)

	_, err = ParseInline("=orphan")
	require.Error(t, err)
}

// TestMerge checks later sets override earlier keys.
func TestMerge(t *testing.T) {
	t.Parallel()

	merged := Merge(
		Vars{"A": "1", "B": "1"},
		Vars{"B": "2"},
		Vars{"C": "3"},
	)
	require.Equal(t, Vars{"A": "1", "B": "2", "C": "3"}, merged)
}

// TestLoadFiles loads .env files in order, relative to the base dir.
func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "first.env"), []byte("UBUNTU_VERSION=20.04\nSHARED=first\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "second.env"), []byte("SHARED=second\n"), 0o600))

	vars, err := LoadFiles(dir, []string{"first.env", "second.env", ""})
	require.NoError(t, err)
	require.Equal(t, "20.04", vars["UBUNTU_VERSION"])
	require.Equal(t, "second", vars["SHARED"])

	_, err = LoadFiles(dir, []string{"missing.env"})
	require.Error(t, err)
}

// TestEnviron renders KEY=VALUE pairs.
func TestEnviron(t *testing.T) {
	t.Parallel()

	environ := Vars{"A": "1"}.Environ()
	require.Equal(t, []string{"A=1"}, environ)
}
