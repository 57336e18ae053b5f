// SPDX-License-Identifier: MIT

// Package bench executes workload plans: it generates inputs, times the
// lvlseq algorithms on them, verifies every result and aggregates latencies
// into HDR histograms.
package bench

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlseq/internal/rng"
	"github.com/katalvlaran/lvlseq/internal/workload"
)

// ErrInvariant is returned when an algorithm's output fails verification.
var ErrInvariant = errors.New("bench: invariant violated")

const (
	// maxLatency bounds the histograms; slower samples are recorded as maxLatency.
	maxLatency = int64(time.Minute)
	sigFigs    = 3
)

// Runner executes plans. The zero value is usable: it logs nowhere and
// uses the plan's worker count, or one worker per CPU.
type Runner struct {
	// Logger receives progress and per-result records. nil disables logging.
	Logger *zap.Logger

	// Workers, if > 0, overrides Plan.Workers.
	Workers int
}

// Result summarizes the latencies of one (workload, op) pair.
type Result struct {
	Workload string
	Op       workload.Op
	Size     int
	Count    int64
	Mean     time.Duration
	P50      time.Duration
	P99      time.Duration
	Max      time.Duration
}

// Run executes every workload of plan, at most Workers at a time, and
// returns the results in plan order: workloads first, then ops. Each
// workload draws from its own stream derived from (plan.Seed, index), so
// results do not depend on scheduling. The first failure cancels the rest.
func (r *Runner) Run(ctx context.Context, plan *workload.Plan) ([]Result, error) {
	if plan == nil {
		return nil, workload.ErrEmptyPlan
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := r.workers(plan)
	log.Info("starting plan",
		zap.Int64("seed", plan.Seed),
		zap.Int("workloads", len(plan.Workloads)),
		zap.Int("workers", workers))

	perWorkload := make([][]Result, len(plan.Workloads))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range plan.Workloads {
		i := i
		w := plan.Workloads[i]
		g.Go(func() error {
			res, err := runWorkload(gctx, log, w, rng.Derive(plan.Seed, uint64(i)))
			if err != nil {
				return errors.Wrapf(err, "workload %s", w.Name)
			}
			perWorkload[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Result
	for _, res := range perWorkload {
		out = append(out, res...)
	}
	return out, nil
}

func (r *Runner) workers(plan *workload.Plan) int {
	switch {
	case r.Workers > 0:
		return r.Workers
	case plan.Workers > 0:
		return plan.Workers
	default:
		return runtime.NumCPU()
	}
}

// opStats pairs an op with its histogram, keeping plan order.
type opStats struct {
	op   workload.Op
	hist *hdrhistogram.Histogram
}

func runWorkload(ctx context.Context, log *zap.Logger, w workload.Workload, src *rand.Rand) ([]Result, error) {
	stats := make([]opStats, len(w.Ops))
	for i, op := range w.Ops {
		stats[i] = opStats{op: op, hist: hdrhistogram.New(1, maxLatency, sigFigs)}
	}

	start := time.Now()
	for rep := 0; rep < w.Repeat; rep++ {
		for _, st := range stats {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			input, err := workload.Generate(w.Kind, w.Size, src)
			if err != nil {
				return nil, err
			}
			elapsed, err := execute(st.op, input, src)
			if err != nil {
				return nil, errors.Wrapf(err, "op %s, repeat %d", st.op, rep)
			}
			if err := record(st.hist, elapsed); err != nil {
				return nil, err
			}
		}
	}

	out := make([]Result, len(stats))
	for i, st := range stats {
		out[i] = Result{
			Workload: w.Name,
			Op:       st.op,
			Size:     w.Size,
			Count:    st.hist.TotalCount(),
			Mean:     time.Duration(st.hist.Mean()),
			P50:      time.Duration(st.hist.ValueAtQuantile(50)),
			P99:      time.Duration(st.hist.ValueAtQuantile(99)),
			Max:      time.Duration(st.hist.Max()),
		}
		log.Debug("op finished",
			zap.String("workload", w.Name),
			zap.String("op", string(st.op)),
			zap.Duration("p50", out[i].P50),
			zap.Duration("p99", out[i].P99))
	}
	log.Info("workload finished",
		zap.String("workload", w.Name),
		zap.String("kind", string(w.Kind)),
		zap.Int("size", w.Size),
		zap.Int("repeat", w.Repeat),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// record clamps samples into the histogram's trackable range [1, maxLatency].
func record(h *hdrhistogram.Histogram, d time.Duration) error {
	v := min(max(int64(d), 1), maxLatency)
	if err := h.RecordValue(v); err != nil {
		return errors.Wrapf(err, "recording %v", d)
	}
	return nil
}
