// SPDX-License-Identifier: MIT

package order

import "golang.org/x/exp/constraints"

// Less reports whether a strictly precedes b.
type Less[T any] func(a, b T) bool

// Natural is the built-in less-than for ordered types.
func Natural[T constraints.Ordered](a, b T) bool { return a < b }

// Greater is Natural reversed.
func Greater[T constraints.Ordered](a, b T) bool { return b < a }

// Float orders floats totally: NaN precedes every other value (and is
// equivalent to other NaNs), then the usual numeric order.
func Float[F constraints.Float](a, b F) bool {
	return (a != a && b == b) || a < b
}

// Reverse returns the opposite ordering.
func (l Less[T]) Reverse() Less[T] {
	return func(a, b T) bool { return l(b, a) }
}

// Then breaks ties of l with next.
func (l Less[T]) Then(next Less[T]) Less[T] {
	return func(a, b T) bool {
		if l(a, b) {
			return true
		}
		if l(b, a) {
			return false
		}
		return next(a, b)
	}
}

// Equivalent reports !l(a, b) && !l(b, a).
func (l Less[T]) Equivalent(a, b T) bool {
	return !l(a, b) && !l(b, a)
}

// By orders values by an extracted key.
func By[T any, K constraints.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool { return key(a) < key(b) }
}

// FromCompare adapts a three-way comparison (negative, zero, positive).
func FromCompare[T any](cmp func(a, b T) int) Less[T] {
	return func(a, b T) bool { return cmp(a, b) < 0 }
}

// Compare turns less into a three-way result: -1, 0 or +1.
func Compare[T any](less Less[T], a, b T) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return 1
	default:
		return 0
	}
}
