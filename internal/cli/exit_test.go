package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/interp"

	"github.com/ci-forge/provisionctl/internal/shell"
)

// TestExitCode maps errors to process exit codes.
func TestExitCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 1, ExitCode(errors.New("tool error")))
	require.Equal(t, 7, ExitCode(fmt.Errorf("step failed: %w", interp.NewExitStatus(7))))
}

// TestExitCodeFromShell checks a failing snippet's status survives the
// wrapping layers up to the exit code.
func TestExitCodeFromShell(t *testing.T) {
	t.Parallel()

	err := shell.Run(context.Background(), "status", "exit 42", nil, nil, nil)
	require.Error(t, err)

	wrapped := fmt.Errorf("step %q: %w", "status", err)
	require.Equal(t, 42, ExitCode(wrapped))
}
