// SPDX-License-Identifier: MIT

package introsort

// Source yields pivot indices. Intn must return a value in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// InsertionThreshold is the default range length at or below which the
// engine switches to insertion sort.
const InsertionThreshold = 32

const panicThresholdInvalid = "introsort: WithInsertionThreshold: threshold must be >= 1"

// Option configures a Sort call.
type Option func(*Options)

// Options holds the parameters of one Sort call.
type Options struct {
	// Seed feeds the per-call pivot stream when Source is nil.
	// 0 selects the package default seed.
	Seed int64

	// Source, if non-nil, supplies pivots directly and Seed is ignored.
	Source Source

	// Threshold is the insertion sort cutoff.
	Threshold int

	// OnPartition is called after each partition of n elements with the
	// pivot's final offset inside that subrange.
	OnPartition func(n, pivot int)

	// OnFallback is called when a subrange of n elements is handed to heapsort.
	OnFallback func(n int)

	// OnInsertion is called when a subrange of n elements is insertion sorted.
	OnInsertion func(n int)
}

// DefaultOptions returns the defaults: seed 0, no explicit source,
// InsertionThreshold and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Threshold:   InsertionThreshold,
		OnPartition: func(int, int) {},
		OnFallback:  func(int) {},
		OnInsertion: func(int) {},
	}
}

// WithSeed selects the deterministic pivot stream derived from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSource makes the call draw pivots from src. A nil src is ignored.
// The Source is used from the calling goroutine only.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Source = src
		}
	}
}

// WithInsertionThreshold sets the insertion sort cutoff.
// Panics if t < 1.
func WithInsertionThreshold(t int) Option {
	if t < 1 {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) {
		o.Threshold = t
	}
}

// WithOnPartition registers a hook run after every partition.
func WithOnPartition(fn func(n, pivot int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPartition = fn
		}
	}
}

// WithOnFallback registers a hook run when the budget is exhausted and a
// subrange is heapsorted.
func WithOnFallback(fn func(n int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFallback = fn
		}
	}
}

// WithOnInsertion registers a hook run for each insertion-sorted subrange.
func WithOnInsertion(fn func(n int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsertion = fn
		}
	}
}
