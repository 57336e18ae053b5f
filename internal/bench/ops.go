// SPDX-License-Identifier: MIT

package bench

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlseq/algo"
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/heap"
	"github.com/katalvlaran/lvlseq/internal/workload"
	"github.com/katalvlaran/lvlseq/introsort"
	"github.com/katalvlaran/lvlseq/order"
	"github.com/katalvlaran/lvlseq/search"
)

var less = order.Natural[int]

// execute times op on input, which it may reorder, and verifies the outcome.
// Only the algorithm itself is inside the timed region.
func execute(op workload.Op, input []int, src *rand.Rand) (time.Duration, error) {
	sum := fingerprintOf(input)
	first, last := cursor.Range(input)

	switch op {
	case workload.OpSort:
		start := time.Now()
		introsort.Sort(first, last, less, introsort.WithSource(src))
		elapsed := time.Since(start)
		return elapsed, verifySorted(input, sum)

	case workload.OpHeapSort:
		start := time.Now()
		heap.Make(first, last, less)
		heap.Sort(first, last, less)
		elapsed := time.Since(start)
		return elapsed, verifySorted(input, sum)

	case workload.OpSearch:
		probes := append([]int(nil), input...)
		introsort.Sort(first, last, less, introsort.WithSource(src))
		windows := make([][2]int, len(probes))
		start := time.Now()
		for i, v := range probes {
			lo, hi := search.EqualRange(first, last, v, less)
			windows[i] = [2]int{lo.Index(), hi.Index()}
		}
		elapsed := time.Since(start)
		return elapsed, verifyWindows(input, probes, windows)

	case workload.OpMinMax:
		start := time.Now()
		lo, hi := algo.MinMaxElement(first, last, less)
		elapsed := time.Since(start)
		return elapsed, verifyExtrema(input, lo.Index(), hi.Index())

	case workload.OpQueue:
		start := time.Now()
		q := heap.NewQueue(less)
		for _, v := range input {
			q.Push(v)
		}
		drained := q.Drain()
		elapsed := time.Since(start)
		return elapsed, verifyDrained(drained, sum)

	default:
		return 0, errors.Wrapf(workload.ErrUnknownOp, "%q", string(op))
	}
}

// fingerprint is an order-independent summary of a multiset of ints.
type fingerprint struct {
	n        int
	sum, xor uint64
	sumSq    uint64
}

func fingerprintOf(s []int) fingerprint {
	f := fingerprint{n: len(s)}
	for _, v := range s {
		u := uint64(v)
		f.sum += u
		f.xor ^= u
		f.sumSq += u * u
	}
	return f
}

func verifySorted(s []int, want fingerprint) error {
	if at := algo.IsSortedUntil(cursor.Begin(s), cursor.End(s), less); !at.Equal(cursor.End(s)) {
		return errors.Wrapf(ErrInvariant, "unsorted at index %d", at.Index())
	}
	return verifyPermutation(s, want)
}

func verifyPermutation(s []int, want fingerprint) error {
	if got := fingerprintOf(s); got != want {
		return errors.Wrap(ErrInvariant, "output is not a permutation of the input")
	}
	return nil
}

func verifyWindows(sorted, probes []int, windows [][2]int) error {
	n := len(sorted)
	for i, v := range probes {
		lo, hi := windows[i][0], windows[i][1]
		switch {
		case lo >= hi || hi > n:
			return errors.Wrapf(ErrInvariant, "empty window [%d,%d) for present value %d", lo, hi, v)
		case sorted[lo] != v || sorted[hi-1] != v:
			return errors.Wrapf(ErrInvariant, "window [%d,%d) does not hold %d", lo, hi, v)
		case lo > 0 && sorted[lo-1] == v, hi < n && sorted[hi] == v:
			return errors.Wrapf(ErrInvariant, "window [%d,%d) for %d is not maximal", lo, hi, v)
		}
	}
	return nil
}

func verifyExtrema(s []int, lo, hi int) error {
	if len(s) == 0 {
		if lo != 0 || hi != 0 {
			return errors.Wrapf(ErrInvariant, "empty range yielded (%d, %d)", lo, hi)
		}
		return nil
	}
	firstMin, lastMax := 0, 0
	for i, v := range s {
		if v < s[firstMin] {
			firstMin = i
		}
		if v >= s[lastMax] {
			lastMax = i
		}
	}
	if lo != firstMin || hi != lastMax {
		return errors.Wrapf(ErrInvariant, "extrema (%d, %d), want (%d, %d)", lo, hi, firstMin, lastMax)
	}
	return nil
}

func verifyDrained(drained []int, want fingerprint) error {
	for i := 1; i < len(drained); i++ {
		if drained[i-1] < drained[i] {
			return errors.Wrapf(ErrInvariant, "queue order broken at %d", i)
		}
	}
	return verifyPermutation(drained, want)
}
