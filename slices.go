// SPDX-License-Identifier: MIT

package lvlseq

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlseq/algo"
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/heap"
	"github.com/katalvlaran/lvlseq/introsort"
	"github.com/katalvlaran/lvlseq/order"
	"github.com/katalvlaran/lvlseq/search"
)

// Sort sorts s in ascending natural order. Not stable.
func Sort[T constraints.Ordered](s []T, opts ...introsort.Option) {
	SortFunc(s, order.Natural[T], opts...)
}

// SortFunc sorts s ascending by less. Not stable.
func SortFunc[T any](s []T, less order.Less[T], opts ...introsort.Option) {
	first, last := cursor.Range(s)
	introsort.Sort(first, last, less, opts...)
}

// IsSorted reports whether s is in ascending natural order.
func IsSorted[T constraints.Ordered](s []T) bool {
	return IsSortedFunc(s, order.Natural[T])
}

// IsSortedFunc reports whether s is sorted by less.
func IsSortedFunc[T any](s []T, less order.Less[T]) bool {
	first, last := cursor.Range(s)
	return algo.IsSorted(first, last, less)
}

// MakeHeap arranges s into a max-heap.
func MakeHeap[T constraints.Ordered](s []T) { MakeHeapFunc(s, order.Natural[T]) }

// MakeHeapFunc arranges s into a heap by less.
func MakeHeapFunc[T any](s []T, less order.Less[T]) {
	first, last := cursor.Range(s)
	heap.Make(first, last, less)
}

// PushHeap sifts s[len(s)-1] into the heap s[:len(s)-1].
func PushHeap[T constraints.Ordered](s []T) { PushHeapFunc(s, order.Natural[T]) }

// PushHeapFunc is PushHeap ordered by less.
func PushHeapFunc[T any](s []T, less order.Less[T]) {
	first, last := cursor.Range(s)
	heap.Push(first, last, less)
}

// PopHeap moves the maximum of the heap s to s[len(s)-1] and re-heapifies
// s[:len(s)-1].
func PopHeap[T constraints.Ordered](s []T) { PopHeapFunc(s, order.Natural[T]) }

// PopHeapFunc is PopHeap ordered by less.
func PopHeapFunc[T any](s []T, less order.Less[T]) {
	first, last := cursor.Range(s)
	heap.Pop(first, last, less)
}

// SortHeap turns the heap s into an ascending slice.
func SortHeap[T constraints.Ordered](s []T) { SortHeapFunc(s, order.Natural[T]) }

// SortHeapFunc is SortHeap ordered by less.
func SortHeapFunc[T any](s []T, less order.Less[T]) {
	first, last := cursor.Range(s)
	heap.Sort(first, last, less)
}

// IsHeap reports whether s is a max-heap.
func IsHeap[T constraints.Ordered](s []T) bool { return IsHeapFunc(s, order.Natural[T]) }

// IsHeapFunc reports whether s is a heap by less.
func IsHeapFunc[T any](s []T, less order.Less[T]) bool {
	first, last := cursor.Range(s)
	return heap.IsHeap(first, last, less)
}

// LowerBound returns the first index i with s[i] >= v in the sorted s.
func LowerBound[T constraints.Ordered](s []T, v T) int {
	return LowerBoundFunc(s, v, order.Natural[T])
}

// LowerBoundFunc returns the first index i with !less(s[i], v).
func LowerBoundFunc[T any](s []T, v T, less order.Less[T]) int {
	first, last := cursor.Range(s)
	return search.LowerBound(first, last, v, less).Index()
}

// UpperBound returns the first index i with s[i] > v in the sorted s.
func UpperBound[T constraints.Ordered](s []T, v T) int {
	return UpperBoundFunc(s, v, order.Natural[T])
}

// UpperBoundFunc returns the first index i with less(v, s[i]).
func UpperBoundFunc[T any](s []T, v T, less order.Less[T]) int {
	first, last := cursor.Range(s)
	return search.UpperBound(first, last, v, less).Index()
}

// EqualRange returns the index range [lo, hi) of elements equal to v.
func EqualRange[T constraints.Ordered](s []T, v T) (lo, hi int) {
	return EqualRangeFunc(s, v, order.Natural[T])
}

// EqualRangeFunc returns the index range [lo, hi) of elements equivalent to v.
func EqualRangeFunc[T any](s []T, v T, less order.Less[T]) (lo, hi int) {
	first, last := cursor.Range(s)
	l, h := search.EqualRange(first, last, v, less)
	return l.Index(), h.Index()
}

// BinarySearch reports whether the sorted s contains v.
func BinarySearch[T constraints.Ordered](s []T, v T) bool {
	return BinarySearchFunc(s, v, order.Natural[T])
}

// BinarySearchFunc reports whether s holds an element equivalent to v.
func BinarySearchFunc[T any](s []T, v T, less order.Less[T]) bool {
	first, last := cursor.Range(s)
	return search.BinarySearch(first, last, v, less)
}

// MinElement returns the index of the first smallest element, or len(s).
func MinElement[T constraints.Ordered](s []T) int { return MinElementFunc(s, order.Natural[T]) }

// MinElementFunc is MinElement ordered by less.
func MinElementFunc[T any](s []T, less order.Less[T]) int {
	first, last := cursor.Range(s)
	return algo.MinElement(first, last, less).Index()
}

// MaxElement returns the index of the first largest element, or len(s).
func MaxElement[T constraints.Ordered](s []T) int { return MaxElementFunc(s, order.Natural[T]) }

// MaxElementFunc is MaxElement ordered by less.
func MaxElementFunc[T any](s []T, less order.Less[T]) int {
	first, last := cursor.Range(s)
	return algo.MaxElement(first, last, less).Index()
}

// MinMaxElement returns the index of the first smallest and of the last
// largest element. Both are len(s) when s is empty.
func MinMaxElement[T constraints.Ordered](s []T) (lo, hi int) {
	return MinMaxElementFunc(s, order.Natural[T])
}

// MinMaxElementFunc is MinMaxElement ordered by less.
func MinMaxElementFunc[T any](s []T, less order.Less[T]) (lo, hi int) {
	first, last := cursor.Range(s)
	l, h := algo.MinMaxElement(first, last, less)
	return l.Index(), h.Index()
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
// A proper prefix compares less than the longer slice.
func Compare[T constraints.Ordered](a, b []T) int {
	return CompareFunc(a, b, order.Natural[T])
}

// CompareFunc is Compare with elements ordered by less.
func CompareFunc[T any](a, b []T, less order.Less[T]) int {
	af, al := cursor.Range(a)
	bf, bl := cursor.Range(b)
	switch {
	case algo.LexicographicalCompare(af, al, bf, bl, less):
		return -1
	case algo.LexicographicalCompare(bf, bl, af, al, less):
		return +1
	default:
		return 0
	}
}
