// SPDX-License-Identifier: MIT

// Package lvlseq is a generic sequence algorithm suite: sorting, binary
// heaps and ordered search over cursors into caller-owned sequences.
//
// 🚀 What is lvlseq?
//
//	A small, dependency-light library built around one idea: algorithms
//	take a half-open range [first, last) of cursors and a strict weak
//	ordering less, and state at the type level which cursor capability
//	they need.
//		• cursor/    - Forward, Bidirectional, RandomAccess cursors; slice and list adapters
//		• order/     - the Less predicate, natural orders and combinators
//		• introsort/ - randomized quicksort + heapsort fallback + insertion sort
//		• heap/      - push, pop, make, sort, is-heap; a slice-backed Queue
//		• search/    - lower/upper bound, equal range, binary search
//		• algo/      - min/max scans, lexicographic compare, find, fill, copy, rotate
//
// ✨ This package
//
//	The root package is a thin facade over plain slices that returns
//	indices instead of cursors. Functions without a suffix use the natural
//	order of constraints.Ordered element types; the Func variants take an
//	explicit order.Less. An empty result position is len(s).
//
//	xs := []int{5, 3, 8, 1, 9, 2}
//	lvlseq.Sort(xs)                     // [1 2 3 5 8 9]
//	i := lvlseq.LowerBound(xs, 4)       // 3
//	lo, hi := lvlseq.MinMaxElement(xs)  // 0, 5
//
// Concurrency: nothing is shared between calls. A range must not be mutated
// by another goroutine while an algorithm runs on it.
//
// Failure safety: if less panics, the panic propagates unchanged and the
// slice still holds a permutation of its original elements.
package lvlseq
