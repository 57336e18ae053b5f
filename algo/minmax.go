// SPDX-License-Identifier: MIT

package algo

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// MinElement returns the first smallest element of [first, last), or last if
// the range is empty.
//
// Complexity: exactly max(n-1, 0) comparisons.
func MinElement[T any, C cursor.Forward[T, C]](first, last C, less order.Less[T]) C {
	if first.Equal(last) {
		return last
	}
	best := first
	for first = first.Next(); !first.Equal(last); first = first.Next() {
		if less(first.Get(), best.Get()) {
			best = first
		}
	}
	return best
}

// MaxElement returns the first largest element of [first, last), or last if
// the range is empty.
//
// Complexity: exactly max(n-1, 0) comparisons.
func MaxElement[T any, C cursor.Forward[T, C]](first, last C, less order.Less[T]) C {
	if first.Equal(last) {
		return last
	}
	best := first
	for first = first.Next(); !first.Equal(last); first = first.Next() {
		if less(best.Get(), first.Get()) {
			best = first
		}
	}
	return best
}

// MinMaxElement returns (first smallest, last largest) in one pass.
// An empty range yields (first, first).
//
// Elements are consumed in pairs: the pair is ordered with one comparison and
// only its smaller member is tested against the running minimum, its larger
// against the running maximum.
//
// Complexity: at most ⌊3(n-1)/2⌋ comparisons.
func MinMaxElement[T any, C cursor.Forward[T, C]](first, last C, less order.Less[T]) (lo, hi C) {
	lo, hi = first, first
	if first.Equal(last) {
		return lo, hi
	}
	first = first.Next()
	if first.Equal(last) {
		return lo, hi
	}
	if less(first.Get(), lo.Get()) {
		lo = first
	} else {
		hi = first
	}

	for first = first.Next(); !first.Equal(last); first = first.Next() {
		a := first
		first = first.Next()
		if first.Equal(last) {
			// odd element out
			if less(a.Get(), lo.Get()) {
				lo = a
			} else if !less(a.Get(), hi.Get()) {
				hi = a
			}
			break
		}

		b := first
		if less(b.Get(), a.Get()) {
			if less(b.Get(), lo.Get()) {
				lo = b
			}
			if !less(a.Get(), hi.Get()) {
				hi = a
			}
		} else {
			if less(a.Get(), lo.Get()) {
				lo = a
			}
			if !less(b.Get(), hi.Get()) {
				hi = b
			}
		}
	}
	return lo, hi
}

// Min returns a if it strictly precedes b, else b.
func Min[T any](a, b T, less order.Less[T]) T {
	if less(a, b) {
		return a
	}
	return b
}

// Max returns b if a strictly precedes it, else a.
func Max[T any](a, b T, less order.Less[T]) T {
	if less(a, b) {
		return b
	}
	return a
}

// MinMax returns (a, b) if a strictly precedes b, else (b, a).
func MinMax[T any](a, b T, less order.Less[T]) (T, T) {
	if less(a, b) {
		return a, b
	}
	return b, a
}
