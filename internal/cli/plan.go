package cli

import (
	"github.com/spf13/cobra"

	"github.com/ci-forge/provisionctl/internal/config"
)

// newPlanCommand creates "plan", which reports which steps would run
// without executing anything.
func newPlanCommand(opts *Options) *cobra.Command {
	var (
		only       string
		skip       string
		inlineVars string
		varFile    string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which provisioning steps would run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			envCfg := applyEnv{}
			if err := parseEnv(&envCfg); err != nil {
				return err
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

			printPlans(cmd, plans)
			return nil
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "Comma-separated step names to run exclusively")
	cmd.Flags().StringVar(&skip, "skip", "", "Comma-separated step names to skip")
	cmd.Flags().StringVar(&inlineVars, "vars", "", "Additional gate variables in k=v,k2=v2 format")
	cmd.Flags().StringVar(&varFile, "var-file", "", "Path to a .env-style file with additional gate variables")

	return cmd
}
