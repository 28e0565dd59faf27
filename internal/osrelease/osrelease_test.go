package osrelease

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReadFile parses quoted and unquoted os-release fields.
func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "os-release")
	contents := `
# comment
PRETTY_NAME="Ubuntu 22.04.4 LTS"
NAME="Ubuntu"
VERSION_ID="22.04"
ID=ubuntu
ID_LIKE=debian
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	info, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ubuntu", info.ID)
	require.Equal(t, "22.04", info.VersionID)
	require.Equal(t, "Ubuntu 22.04.4 LTS", info.PrettyName)
	require.True(t, info.IsUbuntu())
}

// TestReadFileNotUbuntu checks non-Ubuntu hosts are detected as such.
func TestReadFileNotUbuntu(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte("ID=debian\nVERSION_ID=\"12\"\n"), 0o600))

	info, err := ReadFile(path)
	require.NoError(t, err)
	require.False(t, info.IsUbuntu())
	require.Equal(t, "debian", info.ID)
}

// TestReadFileMissing surfaces open errors.
func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
