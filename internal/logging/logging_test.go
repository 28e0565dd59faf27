package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseLevel maps textual levels, defaulting unknown input to info.
func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, LevelDebug, ParseLevel("debug"))
	require.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelInfo, ParseLevel("info"))
	require.Equal(t, LevelInfo, ParseLevel("nonsense"))
	require.Equal(t, LevelInfo, ParseLevel(""))
}

// TestLineWriter splits subprocess output into one record per line.
func TestLineWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	input := []byte("Reading package lists...\nBuilding dependency tree...\r\n\n")
	w := NewLineWriter(logger, "stdout")
	n, err := w.Write(input)
	require.NoError(t, err)
	require.Equal(t, len(input), n)

	out := buf.String()
	require.Contains(t, out, "Reading package lists...")
	require.Contains(t, out, "Building dependency tree...")
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("command output")))
}
