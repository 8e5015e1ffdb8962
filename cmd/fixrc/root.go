package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fixrc/cmd/fixrc/commands"
)

var (
	// Flags
	configFile string
	rootDir    string
	debug      bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".fixrc", "config file path")
	cmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "root directory to migrate (overrides config)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// curOpts snapshots the persistent flags after parsing
func curOpts() commands.Opts {
	return commands.Opts{
		ConfigFile: configFile,
		Root:       rootDir,
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixrc",
		Short: "Apply ordered pattern rewrites across a source tree",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		// Running fixrc with no subcommand performs the migration pass.
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunFix(cmd.Context(), curOpts())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addRootFlags(cmd)

	cmd.AddCommand(commands.NewFixCmd(curOpts))
	cmd.AddCommand(commands.NewRulesCmd(curOpts))

	return cmd
}
