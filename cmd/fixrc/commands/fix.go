package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/pkg/config"
	"github.com/walteh/fixrc/pkg/rewrite"
	"github.com/walteh/fixrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Opts carries the shared flag values into a command run.
type Opts struct {
	ConfigFile string
	Root       string
}

// NewFixCmd creates the fix command
func NewFixCmd(opts func() Opts) *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Run the migration pass over the configured tree",
		Long: `Fix walks the root directory and applies the ordered rule list to every
file matching the suffix filter. Files are rewritten in place, and only when
the composed substitutions actually change their content. The run stops at
the first read, write, or traversal error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunFix(cmd.Context(), opts())
		},
	}
}

// RunFix resolves the config and executes one full migration pass.
func RunFix(ctx context.Context, o Opts) error {
	cfg, err := resolveConfig(ctx, o, true)
	if err != nil {
		return err
	}

	reporter := status.NewConsoleReporter(os.Stdout)

	rw, err := rewrite.New(cfg, reporter)
	if err != nil {
		return errors.Errorf("creating rewriter: %w", err)
	}

	if err := rw.Run(ctx, cfg.Root); err != nil {
		return errors.Errorf("running migration: %w", err)
	}

	return nil
}

// resolveConfig loads the config file if present, falling back to the
// built-in migration when the default config path does not exist. The root
// flag overrides whatever the config names. requireRoot is false for
// commands that only inspect the config.
func resolveConfig(ctx context.Context, o Opts, requireRoot bool) (*config.Config, error) {
	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		// A missing default config file is not an error: use the
		// built-in rule set. An explicitly named file must exist.
		if errors.Is(err, os.ErrNotExist) && o.ConfigFile == ".fixrc" {
			zerolog.Ctx(ctx).Debug().Msg("no config file, using built-in rules")
			cfg = config.Default()
		} else {
			return nil, errors.Errorf("loading config: %w", err)
		}
	}

	if o.Root != "" {
		cfg.Root = o.Root
	}
	if cfg.Root == "" {
		if requireRoot {
			return nil, errors.Errorf("no root directory: set root in the config or pass --root")
		}
		return cfg, nil
	}

	absRoot, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, errors.Errorf("getting absolute root path: %w", err)
	}
	cfg.Root = absRoot

	return cfg, nil
}
