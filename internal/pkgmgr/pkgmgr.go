// Package pkgmgr drives the OS package manager for provisioning steps.
package pkgmgr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Cmd describes a single external command invocation.
type Cmd struct {
	// Name is the binary to execute.
	Name string
	// Args are the command arguments.
	Args []string
	// Env holds extra KEY=VALUE pairs appended to the process environment.
	Env []string
}

// String renders the invocation the way a shell trace would.
func (c Cmd) String() string {
	parts := append([]string{c.Name}, c.Args...)
	return strings.Join(parts, " ")
}

// Runner executes external commands. The indirection keeps the apt wrapper
// testable without touching the host.
type Runner interface {
	Run(ctx context.Context, cmd Cmd) error
}

// ExecRunner runs commands via os/exec, logging each command line before it
// starts. Failures are wrapped so the caller can recover the exit code.
type ExecRunner struct {
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner constructs an ExecRunner bound to the given logger.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	return &ExecRunner{Logger: logger}
}

// Run executes cmd, streaming its output and returning a wrapped error on
// non-zero exit. The command line is logged before execution.
func (r *ExecRunner) Run(ctx context.Context, cmd Cmd) error {
	if r.Logger != nil {
		r.Logger.Info("running command", "command", cmd.String())
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Stdout = r.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = r.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	if err := c.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.String(), err)
	}
	return nil
}

// Manager is the package-manager surface used by provisioning steps.
type Manager interface {
	// Refresh updates the package index.
	Refresh(ctx context.Context) error
	// Install installs the named packages without prompting.
	Install(ctx context.Context, packages ...string) error
}

// Apt manages packages through apt-get. Installs are non-interactive and
// auto-confirmed, matching unattended CI runs.
type Apt struct {
	runner Runner
	// Sudo prefixes invocations with sudo for non-root hosts. Inside
	// container builds the tool usually runs as root and this stays false.
	Sudo bool
}

// Binary is the apt front-end driven by Apt.
const Binary = "apt-get"

// NewApt constructs an Apt backed by the given runner.
func NewApt(runner Runner) *Apt {
	return &Apt{runner: runner}
}

// Refresh runs the apt index update.
func (a *Apt) Refresh(ctx context.Context) error {
	return a.runner.Run(ctx, a.command(nil, "update"))
}

// Install installs the given packages with automatic confirmation. A call
// with no packages is a no-op.
func (a *Apt) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"install", "-y", "-q"}, packages...)
	return a.runner.Run(ctx, a.command([]string{"DEBIAN_FRONTEND=noninteractive"}, args...))
}

// command builds the invocation, routing env assignments through sudo's
// argument form when Sudo is set, since sudo strips the caller environment.
func (a *Apt) command(env []string, args ...string) Cmd {
	if !a.Sudo {
		return Cmd{Name: Binary, Args: args, Env: env}
	}
	sudoArgs := make([]string, 0, len(env)+len(args)+1)
	sudoArgs = append(sudoArgs, env...)
	sudoArgs = append(sudoArgs, Binary)
	sudoArgs = append(sudoArgs, args...)
	return Cmd{Name: "sudo", Args: sudoArgs}
}

// Available reports whether the apt front-end is on PATH.
func Available() bool {
	_, err := exec.LookPath(Binary)
	return err == nil
}
