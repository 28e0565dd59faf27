// Package shell executes inline provisioning snippets with fail-fast semantics.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Run parses and executes script under "set -e", so the first failing
// command aborts the snippet and its status is surfaced as
// interp.ExitStatus. environ is the complete KEY=VALUE environment for the
// script; stdout and stderr receive the script's output.
func Run(ctx context.Context, name, script string, environ []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return fmt.Errorf("parse script %q: %w", name, err)
	}

	runner, err := interp.New(
		interp.Params("-e"),
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("init interpreter: %w", err)
	}

	if err := runner.Run(ctx, file); err != nil {
		return fmt.Errorf("script %q failed: %w", name, err)
	}
	return nil
}
