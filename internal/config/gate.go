package config

import (
	"fmt"
	"strings"

	version "github.com/hashicorp/go-version"
)

// Gate conditions a step on an environment variable being set and non-empty,
// optionally matching its value against a version constraint.
type Gate struct {
	// Env is the variable name, e.g. UBUNTU_VERSION.
	Env string `yaml:"env"`
	// Constraint is an optional version constraint (">= 20.04") matched
	// against the variable's value. Without it the value is not inspected.
	Constraint string `yaml:"constraint,omitempty"`
}

// Decision is the outcome of evaluating a gate for one run.
type Decision struct {
	// Run reports whether the step should execute.
	Run bool
	// Reason explains the decision for plan output and logs.
	Reason string
}

// Evaluate resolves the gate against a variable lookup. A nil gate always
// runs. An unparsable value under a constraint is an error rather than a
// skip, so a misconfigured CI job fails loudly instead of silently dropping
// a provisioning step.
func (g *Gate) Evaluate(lookup func(string) (string, bool)) (Decision, error) {
	if g == nil {
		return Decision{Run: true, Reason: "unconditional"}, nil
	}

	value, ok := lookup(g.Env)
	if !ok || strings.TrimSpace(value) == "" {
		return Decision{Reason: fmt.Sprintf("%s is not set", g.Env)}, nil
	}

	if g.Constraint == "" {
		return Decision{Run: true, Reason: fmt.Sprintf("%s=%s", g.Env, value)}, nil
	}

	constraints, err := version.NewConstraint(g.Constraint)
	if err != nil {
		return Decision{}, fmt.Errorf("invalid constraint %q: %w", g.Constraint, err)
	}
	v, err := version.NewVersion(strings.TrimSpace(value))
	if err != nil {
		return Decision{}, fmt.Errorf("%s=%q is not a valid version: %w", g.Env, value, err)
	}

	if !constraints.Check(v) {
		return Decision{Reason: fmt.Sprintf("%s=%s does not satisfy %q", g.Env, value, g.Constraint)}, nil
	}
	return Decision{Run: true, Reason: fmt.Sprintf("%s=%s satisfies %q", g.Env, value, g.Constraint)}, nil
}
