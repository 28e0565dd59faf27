package cli

import (
	"github.com/spf13/cobra"

	"github.com/ci-forge/provisionctl/internal/logging"
	"github.com/ci-forge/provisionctl/internal/pkgmgr"
)

// newInstallCommand creates "install", a direct unconditional install of
// the named packages: index refresh first, then a non-interactive install.
func newInstallCommand(_ *Options) *cobra.Command {
	var (
		skipRefresh bool
		sudo        bool
	)

	cmd := &cobra.Command{
		Use:   "install <package>...",
		Short: "Refresh the package index and install the named packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			envCfg := installEnv{}
			if err := parseEnv(&envCfg); err != nil {
				return err
			}
			if !cmd.Flags().Changed("skip-refresh") && envPresent("PROVISIONCTL_SKIP_REFRESH") {
				skipRefresh = envCfg.SkipRefresh
			}
			if !cmd.Flags().Changed("sudo") && envPresent("PROVISIONCTL_SUDO") {
				sudo = envCfg.Sudo
			}

			runner := pkgmgr.NewExecRunner(logger)
			runner.Stdout = logging.NewLineWriter(logger, "stdout")
			runner.Stderr = logging.NewLineWriter(logger, "stderr")
			apt := pkgmgr.NewApt(runner)
			apt.Sudo = sudo

			if !skipRefresh {
				if err := apt.Refresh(cmd.Context()); err != nil {
					return err
				}
			}
			if err := apt.Install(cmd.Context(), args...); err != nil {
				return err
			}

			logger.Info("packages installed", "packages", args)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipRefresh, "skip-refresh", false, "Skip the package index refresh")
	cmd.Flags().BoolVar(&sudo, "sudo", false, "Run package-manager commands through sudo")

	return cmd
}
