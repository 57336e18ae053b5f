// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqbench",
		Short: "Benchmark and exercise the lvlseq sequence algorithms",
		Long: `
seqbench runs YAML benchmark plans against the lvlseq sort, heap and search
engines, verifying every result, and sorts ad-hoc integer lists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info",
		"Log level, one of [debug, info, warn, error].")

	root.AddCommand(newRunCmd(), newSortCmd())
	return root
}

// newLogger builds a console logger at the level named by the --log-level flag.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	name, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := zap.ParseAtomicLevel(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --log-level %q", name)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
