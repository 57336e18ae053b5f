// SPDX-License-Identifier: MIT

package introsort

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/heap"
	"github.com/katalvlaran/lvlseq/internal/rng"
	"github.com/katalvlaran/lvlseq/order"
)

// Sort sorts [first, last) ascending by less. Ranges shorter than two
// elements are left untouched.
//
// Example:
//
//	first, last := cursor.Range(xs)
//	introsort.Sort(first, last, order.Natural[int], introsort.WithSeed(7))
func Sort[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T], opts ...Option) {
	n := last.Sub(first)
	if n < 2 {
		return
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &sorter[T, C]{less: less, opts: o}
	s.loop(first, last, n)
}

// sorter carries per-call state through the recursion.
type sorter[T any, C cursor.RandomAccess[T, C]] struct {
	less order.Less[T]
	opts Options
	src  Source
}

// source returns the pivot stream, creating the seeded one on first use so
// that inputs which never partition never allocate a generator.
func (s *sorter[T, C]) source() Source {
	if s.src == nil {
		if s.opts.Source != nil {
			s.src = s.opts.Source
		} else {
			s.src = rng.New(s.opts.Seed)
		}
	}
	return s.src
}

func (s *sorter[T, C]) loop(first, last C, budget int) {
	for {
		n := last.Sub(first)
		switch {
		case n < 2:
			return
		case n <= s.opts.Threshold:
			s.opts.OnInsertion(n)
			insertionSort(first, last, s.less)
			return
		case budget == 0:
			s.opts.OnFallback(n)
			heap.Make(first, last, s.less)
			heap.Sort(first, last, s.less)
			return
		}

		p := partition(first, last, s.less, s.source())
		s.opts.OnPartition(n, p)
		budget = (budget >> 1) + (budget >> 2)

		mid := first.Add(p)
		if p < n-1-p {
			s.loop(first, mid, budget)
			first = mid.Next()
		} else {
			s.loop(mid.Next(), last, budget)
			last = mid
		}
	}
}
