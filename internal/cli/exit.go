package cli

import (
	"errors"
	"os/exec"

	"mvdan.cc/sh/v3/interp"
)

// ExitCode maps a command error to the process exit code. Failures of
// external commands and shell snippets keep their original exit status so
// the CI orchestrator sees what the package manager reported; anything else
// is a generic failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	if status, ok := interp.IsExitStatus(err); ok {
		return int(status)
	}

	return 1
}
