// Package cli defines the command-line interface for provisionctl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ci-forge/provisionctl/internal/config"
	"github.com/ci-forge/provisionctl/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	LogLevel   logging.Level
}

// Execute builds the root command, runs it with the provided args and
// logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		ConfigPath: config.DefaultPath,
		LogLevel:   logging.LevelInfo,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and
// subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provisionctl",
		Short: "provisionctl installs build dependencies in CI images",
		Long: "provisionctl runs environment-gated provisioning steps inside CI image builds,\n" +
			"installing OS packages and running setup snippets based on a provision.yaml manifest.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envCfg := baseEnv{}
			if err := parseEnv(&envCfg); err != nil {
				return err
			}
			if !cmd.Flags().Changed("config") && envPresent("PROVISIONCTL_CONFIG") {
				opts.ConfigPath = envCfg.ConfigPath
			}
			levelValue := cmd.Flag("log-level").Value.String()
			if !cmd.Flags().Changed("log-level") && envPresent("PROVISIONCTL_LOG_LEVEL") {
				levelValue = envCfg.LogLevel
			}

			level := logging.ParseLevel(levelValue)
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", levelValue)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultPath, "Path to the provision.yaml manifest")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newApplyCommand(opts),
		newPlanCommand(opts),
		newInstallCommand(opts),
		newDoctorCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command
// contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a
// default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
