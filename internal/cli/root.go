// SPDX-License-Identifier: MIT

// Package cli wires the particula command tree: configuration, logging,
// reference-table selection and the subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/particula/internal/cli/commands"
	"github.com/katalvlaran/particula/internal/cli/config"
	"github.com/katalvlaran/particula/refdata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "0.1.0"

// NewRootCmd creates the root command. Subcommands share one Env that is
// populated after flag parsing.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	env := &commands.Env{}

	rootCmd := &cobra.Command{
		Use:   "particula",
		Short: "Identify and classify particles, elements, isotopes and ions",
		Long: `particula resolves loosely written particle identifiers ("e-", "alpha",
"Fe-56 17+", "deuterium", "iron") against reference tables and reports their
derived physical attributes and classification categories.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogJSON, cfg.Level())
			if used != "" {
				logger.Debug("using config file", zap.String("path", used))
			}

			tables, err := loadTables(cfg.DataDir)
			if err != nil {
				return err
			}

			env.Config, env.Tables, env.Logger = cfg, tables, logger

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if env.Logger != nil {
				_ = env.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./particula.yaml)")
	pf.StringP("output", "o", config.DefaultOutput, "output format (table|json)")
	pf.Bool("log-json", false, "emit log lines as JSON")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	pf.String("data-dir", "", "directory with elements/isotopes/particles tables (default: embedded)")
	pf.Int("workers", config.DefaultWorkers, "concurrent resolutions in batch mode")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewShowCommand(env))
	rootCmd.AddCommand(commands.NewIsCommand(env))
	rootCmd.AddCommand(commands.NewBatchCommand(env))
	rootCmd.AddCommand(commands.NewListCommand(env))
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// loadTables returns the embedded tables, or those found in dir.
func loadTables(dir string) (*refdata.Tables, error) {
	if dir == "" {
		return refdata.Default()
	}
	t, err := refdata.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, errors.Wrapf(err, "load reference tables from %s", dir)
	}

	return t, nil
}

// Execute runs the root command with os.Args and reports any error, with
// its hints, on stderr.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)

		return err
	}

	return nil
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	if hints := errors.FlattenHints(err); hints != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", hints)
	}
}
