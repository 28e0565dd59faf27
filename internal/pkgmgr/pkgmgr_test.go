package pkgmgr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and fails on demand.
type fakeRunner struct {
	commands []Cmd
	err      error
}

func (f *fakeRunner) Run(_ context.Context, cmd Cmd) error {
	f.commands = append(f.commands, cmd)
	return f.err
}

// TestAptRefresh checks the index refresh invocation.
func TestAptRefresh(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	apt := NewApt(runner)

	require.NoError(t, apt.Refresh(context.Background()))
	require.Len(t, runner.commands, 1)
	require.Equal(t, "apt-get", runner.commands[0].Name)
	require.Equal(t, []string{"update"}, runner.commands[0].Args)
	require.Empty(t, runner.commands[0].Env)
}

// TestAptInstall checks the non-interactive, auto-confirmed install shape.
func TestAptInstall(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	apt := NewApt(runner)

	require.NoError(t, apt.Install(context.Background(), "graphviz"))
	require.Len(t, runner.commands, 1)

	cmd := runner.commands[0]
	require.Equal(t, "apt-get", cmd.Name)
	require.Equal(t, []string{"install", "-y", "-q", "graphviz"}, cmd.Args)
	require.Equal(t, []string{"DEBIAN_FRONTEND=noninteractive"}, cmd.Env)
}

// TestAptInstallNothing confirms a no-package install issues no command.
func TestAptInstallNothing(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	apt := NewApt(runner)

	require.NoError(t, apt.Install(context.Background()))
	require.Empty(t, runner.commands)
}

// TestAptSudo checks env assignments move into sudo's argument list, since
// sudo drops the caller environment.
func TestAptSudo(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	apt := NewApt(runner)
	apt.Sudo = true

	require.NoError(t, apt.Refresh(context.Background()))
	require.NoError(t, apt.Install(context.Background(), "graphviz", "jq"))
	require.Len(t, runner.commands, 2)

	require.Equal(t, "sudo", runner.commands[0].Name)
	require.Equal(t, []string{"apt-get", "update"}, runner.commands[0].Args)

	require.Equal(t, "sudo", runner.commands[1].Name)
	require.Equal(t,
		[]string{"DEBIAN_FRONTEND=noninteractive", "apt-get", "install", "-y", "-q", "graphviz", "jq"},
		runner.commands[1].Args)
	require.Empty(t, runner.commands[1].Env)
}

// TestAptFailurePropagates checks runner errors surface unchanged.
func TestAptFailurePropagates(t *testing.T) {
	t.Parallel()

	failure := errors.New("exit status 100")
	runner := &fakeRunner{err: failure}
	apt := NewApt(runner)

	err := apt.Refresh(context.Background())
	require.ErrorIs(t, err, failure)
}

// TestCmdString renders a shell-trace style command line.
func TestCmdString(t *testing.T) {
	t.Parallel()

	cmd := Cmd{Name: "apt-get", Args: []string{"install", "-y", "-q", "graphviz"}}
	require.Equal(t, "apt-get install -y -q graphviz", cmd.String())
}
