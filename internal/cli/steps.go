package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ci-forge/provisionctl/internal/config"
	"github.com/ci-forge/provisionctl/internal/env"
	"github.com/ci-forge/provisionctl/internal/pkgmgr"
)

// stepPlan pairs a step with its gate decision for one run.
type stepPlan struct {
	step     config.Step
	decision config.Decision
}

// shellFunc runs an inline snippet with the given name and environment.
type shellFunc func(ctx context.Context, name, script string, environ []string) error

// stepDeps carries the executors used by executeSteps, so tests can swap in
// fakes without touching the host.
type stepDeps struct {
	logger   *slog.Logger
	manager  pkgmgr.Manager
	runShell shellFunc
	// vars is the merged gate variable set, also the base environment for
	// shell snippets.
	vars env.Vars
}

// planSteps evaluates every step's gate against vars, honoring name
// filters. Filtered or gated-out steps are kept in the plan with Run=false
// so reports show why nothing happened.
func planSteps(cfg *config.Config, vars env.Vars, only, skip map[string]struct{}) ([]stepPlan, error) {
	plans := make([]stepPlan, 0, len(cfg.Steps))
	for _, step := range cfg.Steps {
		if len(only) > 0 {
			if _, ok := only[step.Name]; !ok {
				plans = append(plans, stepPlan{step: step, decision: config.Decision{Reason: "filtered by --only"}})
				continue
			}
		}
		if _, ok := skip[step.Name]; ok {
			plans = append(plans, stepPlan{step: step, decision: config.Decision{Reason: "filtered by --skip"}})
			continue
		}

		decision, err := step.When.Evaluate(vars.Lookup)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Name, err)
		}
		plans = append(plans, stepPlan{step: step, decision: decision})
	}
	return plans, nil
}

// stepResult summarizes an executed run for logs and CI outputs.
type stepResult struct {
	applied []string
	skipped []string
}

// executeSteps runs the planned steps in order. The first failing command
// aborts the run and its error is returned unwrapped enough for exit-code
// extraction; already-applied step names are reported alongside.
func executeSteps(ctx context.Context, deps stepDeps, plans []stepPlan) (stepResult, error) {
	var res stepResult
	for _, plan := range plans {
		name := plan.step.Name
		if !plan.decision.Run {
			deps.logger.Info("skipping step", "step", name, "reason", plan.decision.Reason)
			res.skipped = append(res.skipped, name)
			continue
		}

		deps.logger.Info("running step", "step", name, "reason", plan.decision.Reason)

		if len(plan.step.Packages) > 0 {
			if err := deps.manager.Refresh(ctx); err != nil {
				return res, fmt.Errorf("step %q: %w", name, err)
			}
			if err := deps.manager.Install(ctx, plan.step.Packages...); err != nil {
				return res, fmt.Errorf("step %q: %w", name, err)
			}
		}

		if plan.step.Run != "" {
			environ := deps.vars
			if len(plan.step.Env) > 0 {
				environ = env.Merge(deps.vars, plan.step.Env)
			}
			if err := deps.runShell(ctx, name, plan.step.Run, environ.Environ()); err != nil {
				return res, fmt.Errorf("step %q: %w", name, err)
			}
		}

		res.applied = append(res.applied, name)
	}
	return res, nil
}

// parseNameSet splits a comma-separated name list into a set.
func parseNameSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out[part] = struct{}{}
	}
	return out
}

// gatherVars builds the gate variable set for a run: process environment,
// then manifest envFiles, then an optional var file, then inline overrides.
func gatherVars(cfg *config.Config, varFile, inlineVars string) (env.Vars, error) {
	vars := env.FromOS()

	if len(cfg.EnvFiles) > 0 {
		fileVars, err := env.LoadFiles(cfg.BaseDir(), cfg.EnvFiles)
		if err != nil {
			return nil, err
		}
		vars = env.Merge(vars, fileVars)
	}

	if strings.TrimSpace(varFile) != "" {
		fileVars, err := env.LoadFile(varFile)
		if err != nil {
			return nil, err
		}
		vars = env.Merge(vars, fileVars)
	}

	inline, err := env.ParseInline(inlineVars)
	if err != nil {
		return nil, err
	}
	return env.Merge(vars, inline), nil
}
