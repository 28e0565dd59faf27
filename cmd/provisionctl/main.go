package main

import (
	"os"

	"github.com/ci-forge/provisionctl/internal/cli"
	"github.com/ci-forge/provisionctl/internal/logging"
)

// main is the entry point for the provisionctl CLI binary. The process exit
// code mirrors the first failing external command so CI sees the package
// manager's own status.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(cli.ExitCode(err))
	}
}
