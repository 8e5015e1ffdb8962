package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates the rules command
func NewRulesCmd(opts func() Opts) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective ordered rule list",
		Long: `Rules prints the rule list a fix run would apply, in application order,
after config resolution. Useful for checking a config file before running
the migration, or for inspecting the built-in rule set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := resolveConfig(ctx, opts(), false)
			if err != nil {
				return err
			}

			// Compile so a broken pattern is reported here, not mid-run.
			if _, err := rewrite.CompileRules(cfg.Rules); err != nil {
				return errors.Errorf("validating rules: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "root:   %s\n", cfg.Root)
			fmt.Fprintf(out, "suffix: %s\n", cfg.Suffix)
			for i, r := range cfg.Rules {
				if r.Replace == "" {
					fmt.Fprintf(out, "%2d. %s  ->  (delete)\n", i+1, r.Pattern)
					continue
				}
				fmt.Fprintf(out, "%2d. %s  ->  %s\n", i+1, r.Pattern, r.Replace)
			}

			return nil
		},
	}
}
