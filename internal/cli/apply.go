package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ci-forge/provisionctl/internal/config"
	"github.com/ci-forge/provisionctl/internal/ghoutput"
	"github.com/ci-forge/provisionctl/internal/logging"
	"github.com/ci-forge/provisionctl/internal/pkgmgr"
	"github.com/ci-forge/provisionctl/internal/shell"
)

// newApplyCommand creates "apply", which runs every provisioning step whose
// gate matches the current variable set.
func newApplyCommand(opts *Options) *cobra.Command {
	var (
		dryRun     bool
		sudo       bool
		only       string
		skip       string
		inlineVars string
		varFile    string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run provisioning steps whose gates match the environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			envCfg := applyEnv{}
			if err := parseEnv(&envCfg); err != nil {
				return err
			}
			if !cmd.Flags().Changed("dry-run") && envPresent("PROVISIONCTL_DRY_RUN") {
				dryRun = envCfg.DryRun
			}
			if !cmd.Flags().Changed("sudo") && envPresent("PROVISIONCTL_SUDO") {
				sudo = envCfg.Sudo
			}
			if !cmd.Flags().Changed("only") && envPresent("PROVISIONCTL_ONLY") {
				only = envCfg.Only
			}
			if !cmd.Flags().Changed("skip") && envPresent("PROVISIONCTL_SKIP") {
				skip = envCfg.Skip
			}
			if !cmd.Flags().Changed("vars") && envPresent("PROVISIONCTL_VARS") {
				inlineVars = envCfg.Vars
			}
			if !cmd.Flags().Changed("var-file") && envPresent("PROVISIONCTL_VAR_FILE") {
				varFile = envCfg.VarFile
			}

			cfg, err := config.LoadOrDefault(opts.ConfigPath)
			if err != nil {
				return err
			}

			vars, err := gatherVars(cfg, varFile, inlineVars)
			if err != nil {
				return err
			}

			plans, err := planSteps(cfg, vars, parseNameSet(only), parseNameSet(skip))
			if err != nil {
				return err
			}

			if dryRun {
				printPlans(cmd, plans)
				return nil
			}

			runner := pkgmgr.NewExecRunner(logger)
			runner.Stdout = logging.NewLineWriter(logger, "stdout")
			runner.Stderr = logging.NewLineWriter(logger, "stderr")
			apt := pkgmgr.NewApt(runner)
			apt.Sudo = sudo

			deps := stepDeps{
				logger:   logger,
				manager:  apt,
				runShell: shellRunner(cmd),
				vars:     vars,
			}

			res, execErr := executeSteps(cmd.Context(), deps, plans)

			if err := ghoutput.Write(map[string]string{
				"applied": strings.Join(res.applied, " "),
				"skipped": strings.Join(res.skipped, " "),
			}); err != nil {
				logger.Warn("failed to write GitHub outputs", "error", err)
			}
			if err := ghoutput.WriteSummary(summaryMarkdown(cfg.Project, res, execErr)); err != nil {
				logger.Warn("failed to write GitHub step summary", "error", err)
			}

			if execErr != nil {
				return execErr
			}
			logger.Info("provisioning completed", "applied", len(res.applied), "skipped", len(res.skipped))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Evaluate gates without executing any command")
	cmd.Flags().BoolVar(&sudo, "sudo", false, "Run package-manager commands through sudo")
	cmd.Flags().StringVar(&only, "only", "", "Comma-separated step names to run exclusively")
	cmd.Flags().StringVar(&skip, "skip", "", "Comma-separated step names to skip")
	cmd.Flags().StringVar(&inlineVars, "vars", "", "Additional gate variables in k=v,k2=v2 format")
	cmd.Flags().StringVar(&varFile, "var-file", "", "Path to a .env-style file with additional gate variables")

	return cmd
}

// shellRunner adapts shell.Run to the step executor, wiring the command's
// stdio so snippet output lands where apt output does.
func shellRunner(cmd *cobra.Command) shellFunc {
	return func(ctx context.Context, name, script string, environ []string) error {
		return shell.Run(ctx, name, script, environ, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
}

// printPlans writes a human-readable gate report to the command's stdout.
func printPlans(cmd *cobra.Command, plans []stepPlan) {
	for _, plan := range plans {
		action := "skip"
		if plan.decision.Run {
			action = "run"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "step %s: %s (%s)\n", plan.step.Name, action, plan.decision.Reason)
	}
}

// summaryMarkdown renders the apply outcome for GITHUB_STEP_SUMMARY.
func summaryMarkdown(project string, res stepResult, execErr error) string {
	title := "provisionctl apply"
	if project != "" {
		title += ": " + project
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", title)
	if len(res.applied) > 0 {
		fmt.Fprintf(&b, "- applied: %s\n", strings.Join(res.applied, ", "))
	}
	if len(res.skipped) > 0 {
		fmt.Fprintf(&b, "- skipped: %s\n", strings.Join(res.skipped, ", "))
	}
	if execErr != nil {
		fmt.Fprintf(&b, "- failed: %v\n", execErr)
	}
	return b.String()
}
