package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/ci-forge/provisionctl/internal/osrelease"
	"github.com/ci-forge/provisionctl/internal/pkgmgr"
)

// newDoctorCommand creates "doctor", which runs host preflight checks
// before a provisioning run.
func newDoctorCommand(_ *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run host preflight checks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			var fatalErrs []error

			if pkgmgr.Available() {
				logger.Info("package manager check ok", "binary", pkgmgr.Binary)
			} else {
				err := fmt.Errorf("%s not found in PATH", pkgmgr.Binary)
				logger.Error("package manager check failed", "error", err)
				fatalErrs = append(fatalErrs, err)
			}

			info, err := osrelease.Read()
			switch {
			case err != nil:
				logger.Warn("os-release not readable", "error", err)
			case info.IsUbuntu():
				logger.Info("distribution check ok", "distribution", info.PrettyName, "version", info.VersionID)
			default:
				logger.Warn("host is not Ubuntu, apt steps may not apply", "distribution", info.ID)
			}

			if os.Geteuid() == 0 {
				logger.Info("running as root")
			} else if _, err := exec.LookPath("sudo"); err == nil {
				logger.Info("not root, sudo available; pass --sudo to package commands")
			} else {
				err := errors.New("not running as root and sudo is not available")
				logger.Error("privilege check failed", "error", err)
				fatalErrs = append(fatalErrs, err)
			}

			if os.Getenv("GITHUB_OUTPUT") != "" {
				logger.Info("GitHub Actions outputs enabled")
			} else {
				logger.Debug("GITHUB_OUTPUT not set, CI outputs disabled")
			}

			if len(fatalErrs) > 0 {
				return errors.Join(fatalErrs...)
			}
			logger.Info("doctor checks completed successfully")
			return nil
		},
	}
}
