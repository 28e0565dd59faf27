// Package config contains the loader and typed model for provision.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the manifest location used when no --config is given.
const DefaultPath = "provision.yaml"

// Config is the provisioning manifest: an ordered list of gated steps.
type Config struct {
	// Project is an optional short project name used in reports.
	Project string `yaml:"project,omitempty"`
	// EnvFiles lists .env files merged into the gate variable set before
	// steps are evaluated. Relative paths resolve against the manifest dir.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// Steps are executed in order; the first failure aborts the run.
	Steps []Step `yaml:"steps"`

	// baseDir is the directory of the loaded manifest, "." for the
	// built-in default.
	baseDir string
}

// Step is one provisioning action, gated by an optional condition.
type Step struct {
	// Name identifies the step in logs and CI outputs.
	Name string `yaml:"name"`
	// When gates the step; a step without a gate always runs.
	When *Gate `yaml:"when,omitempty"`
	// Packages are installed via the package manager, index refresh first.
	Packages []string `yaml:"packages,omitempty"`
	// Run is an inline shell snippet executed after Packages.
	Run string `yaml:"run,omitempty"`
	// Env holds extra variables for the Run snippet.
	Env map[string]string `yaml:"env,omitempty"`
}

// BaseDir returns the directory the manifest was loaded from.
func (c *Config) BaseDir() string {
	if c.baseDir == "" {
		return "."
	}
	return c.baseDir
}

// Default returns the built-in manifest used when no provision.yaml exists:
// install graphviz on Ubuntu build hosts, identified by UBUNTU_VERSION.
func Default() *Config {
	return &Config{
		Steps: []Step{
			{
				Name:     "graphviz",
				When:     &Gate{Env: "UBUNTU_VERSION"},
				Packages: []string{"graphviz"},
			},
		},
	}
}

// Load reads and validates a manifest from path.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal manifest %q: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads the manifest at path when it exists and falls back to
// the built-in default when the default path is absent. A missing
// explicitly named manifest is an error.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("stat manifest %q: %w", path, err)
	}
	return Load(path)
}

// Validate checks step names and contents, naming the offending step.
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("manifest defines no steps")
	}

	seen := make(map[string]struct{}, len(c.Steps))
	for i, step := range c.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d has no name", i)
		}
		if _, dup := seen[step.Name]; dup {
			return fmt.Errorf("duplicate step name %q", step.Name)
		}
		seen[step.Name] = struct{}{}

		if len(step.Packages) == 0 && step.Run == "" {
			return fmt.Errorf("step %q declares neither packages nor run", step.Name)
		}
		if step.When != nil && step.When.Env == "" {
			return fmt.Errorf("step %q has a gate without an env variable", step.Name)
		}
	}
	return nil
}
