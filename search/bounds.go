// SPDX-License-Identifier: MIT

package search

import (
	"github.com/katalvlaran/lvlseq/algo"
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/internal/check"
	"github.com/katalvlaran/lvlseq/order"
)

// LowerBound returns the first position p in [first, last) with
// !less(*p, value), or last if every element precedes value.
func LowerBound[T any, C cursor.RandomAccess[T, C]](first, last C, value T, less order.Less[T]) C {
	requireSorted(first, last, less, "LowerBound")
	return lowerBound(first, last.Sub(first), value, less)
}

// UpperBound returns the first position p in [first, last) with
// less(value, *p), or last if no element follows value.
func UpperBound[T any, C cursor.RandomAccess[T, C]](first, last C, value T, less order.Less[T]) C {
	requireSorted(first, last, less, "UpperBound")
	return upperBound(first, last.Sub(first), value, less)
}

// EqualRange returns [LowerBound, UpperBound) for value. The two bounds are
// equal when no element is equivalent to value.
func EqualRange[T any, C cursor.RandomAccess[T, C]](first, last C, value T, less order.Less[T]) (lo, hi C) {
	requireSorted(first, last, less, "EqualRange")

	n := last.Sub(first)
	for n > 0 {
		half := n >> 1
		mid := first.Add(half)
		switch {
		case less(mid.Get(), value):
			first = mid.Next()
			n -= half + 1
		case less(value, mid.Get()):
			n = half
		default:
			// mid is equivalent: finish each side in its own half
			lo = lowerBound(first, half, value, less)
			hi = upperBound(mid.Next(), n-half-1, value, less)
			return lo, hi
		}
	}
	return first, first
}

// BinarySearch reports whether [first, last) holds an element equivalent to
// value.
func BinarySearch[T any, C cursor.RandomAccess[T, C]](first, last C, value T, less order.Less[T]) bool {
	requireSorted(first, last, less, "BinarySearch")
	p := lowerBound(first, last.Sub(first), value, less)
	return !p.Equal(last) && !less(value, p.Get())
}

func lowerBound[T any, C cursor.RandomAccess[T, C]](first C, n int, value T, less order.Less[T]) C {
	for n > 0 {
		half := n >> 1
		mid := first.Add(half)
		if less(mid.Get(), value) {
			first = mid.Next()
			n -= half + 1
		} else {
			n = half
		}
	}
	return first
}

func upperBound[T any, C cursor.RandomAccess[T, C]](first C, n int, value T, less order.Less[T]) C {
	for n > 0 {
		half := n >> 1
		mid := first.Add(half)
		if less(value, mid.Get()) {
			n = half
		} else {
			first = mid.Next()
			n -= half + 1
		}
	}
	return first
}

func requireSorted[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T], op string) {
	check.Assert(func() bool { return algo.IsSorted(first, last, less) }, ErrUnsorted, op)
}
