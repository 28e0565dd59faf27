package cli

import (
	"os"
	"strings"

	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from PROVISIONCTL_* env vars.
type baseEnv struct {
	// ConfigPath is the manifest path from PROVISIONCTL_CONFIG.
	ConfigPath string `env:"PROVISIONCTL_CONFIG"`
	// LogLevel is the logging level from PROVISIONCTL_LOG_LEVEL.
	LogLevel string `env:"PROVISIONCTL_LOG_LEVEL"`
}

// applyEnv captures PROVISIONCTL_* inputs for apply and plan runs.
type applyEnv struct {
	// DryRun toggles evaluation-only mode from PROVISIONCTL_DRY_RUN.
	DryRun bool `env:"PROVISIONCTL_DRY_RUN"`
	// Sudo routes package commands through sudo from PROVISIONCTL_SUDO.
	Sudo bool `env:"PROVISIONCTL_SUDO"`
	// Only filters steps by name from PROVISIONCTL_ONLY.
	Only string `env:"PROVISIONCTL_ONLY"`
	// Skip excludes steps by name from PROVISIONCTL_SKIP.
	Skip string `env:"PROVISIONCTL_SKIP"`
	// Vars is a k=v,k2=v2 list from PROVISIONCTL_VARS.
	Vars string `env:"PROVISIONCTL_VARS"`
	// VarFile is a .env-style path from PROVISIONCTL_VAR_FILE.
	VarFile string `env:"PROVISIONCTL_VAR_FILE"`
}

// installEnv captures PROVISIONCTL_* inputs for direct installs.
type installEnv struct {
	// SkipRefresh omits the index refresh from PROVISIONCTL_SKIP_REFRESH.
	SkipRefresh bool `env:"PROVISIONCTL_SKIP_REFRESH"`
	// Sudo routes package commands through sudo from PROVISIONCTL_SUDO.
	Sudo bool `env:"PROVISIONCTL_SUDO"`
}

// parseEnv fills target from PROVISIONCTL_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}

// envPresent reports whether a non-empty env var exists.
func envPresent(key string) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	return strings.TrimSpace(val) != ""
}
