// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/lvlseq/internal/bench"
	"github.com/katalvlaran/lvlseq/internal/workload"
)

type runOptions struct {
	plan    string
	seed    int64
	workers int
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a benchmark plan and print a latency table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, opts)
		},
	}
	addRunFlags(cmd.Flags(), &opts)
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func addRunFlags(f *flag.FlagSet, opts *runOptions) {
	f.StringVarP(&opts.plan, "plan", "p", "", "Path to the YAML plan.")
	f.Int64Var(&opts.seed, "seed", 0, "Overrides the plan seed when set.")
	f.IntVarP(&opts.workers, "workers", "w", 0, "Concurrent workloads; 0 uses the plan value or one per CPU.")
}

func runPlan(cmd *cobra.Command, opts runOptions) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	plan, err := workload.LoadPlan(opts.plan)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		plan.Seed = opts.seed
	}
	if opts.workers < 0 {
		return errors.Wrapf(workload.ErrInvalidSize, "--workers %d", opts.workers)
	}

	r := &bench.Runner{Logger: log, Workers: opts.workers}
	results, err := r.Run(cmd.Context(), plan)
	if err != nil {
		return errors.Wrap(err, "while running plan")
	}
	return writeReport(cmd.OutOrStdout(), results)
}

func writeReport(out io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "WORKLOAD\tOP\tSIZE\tRUNS\tMEAN\tP50\tP99\tMAX\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\t%v\t%v\t%v\t\n",
			r.Workload, r.Op,
			humanize.Comma(int64(r.Size)), humanize.Comma(r.Count),
			r.Mean, r.P50, r.P99, r.Max)
	}
	return tw.Flush()
}
