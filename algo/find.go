// SPDX-License-Identifier: MIT

package algo

import "github.com/katalvlaran/lvlseq/cursor"

// Find returns the first position holding v, or last.
func Find[T comparable, C cursor.Forward[T, C]](first, last C, v T) C {
	for ; !first.Equal(last); first = first.Next() {
		if first.Get() == v {
			return first
		}
	}
	return last
}

// FindIf returns the first position satisfying pred, or last.
func FindIf[T any, C cursor.Forward[T, C]](first, last C, pred func(T) bool) C {
	for ; !first.Equal(last); first = first.Next() {
		if pred(first.Get()) {
			return first
		}
	}
	return last
}

// FindIfNot returns the first position not satisfying pred, or last.
func FindIfNot[T any, C cursor.Forward[T, C]](first, last C, pred func(T) bool) C {
	for ; !first.Equal(last); first = first.Next() {
		if !pred(first.Get()) {
			return first
		}
	}
	return last
}

// AllOf reports whether pred holds for every element (true on empty ranges).
func AllOf[T any, C cursor.Forward[T, C]](first, last C, pred func(T) bool) bool {
	return FindIfNot(first, last, pred).Equal(last)
}

// AnyOf reports whether pred holds for some element (false on empty ranges).
func AnyOf[T any, C cursor.Forward[T, C]](first, last C, pred func(T) bool) bool {
	return !FindIf(first, last, pred).Equal(last)
}

// NoneOf reports whether pred holds for no element (true on empty ranges).
func NoneOf[T any, C cursor.Forward[T, C]](first, last C, pred func(T) bool) bool {
	return FindIf(first, last, pred).Equal(last)
}

// Count returns how many elements equal v.
func Count[T comparable, C cursor.Forward[T, C]](first, last C, v T) int {
	return CountIf(first, last, func(x T) bool { return x == v })
}

// CountIf returns how many elements satisfy pred.
func CountIf[T any, C cursor.Forward[T, C]](first, last C, pred func(T) bool) int {
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		if pred(first.Get()) {
			n++
		}
	}
	return n
}

// Mismatch returns the first pair of positions where eq fails, stopping at
// the end of the shorter range.
func Mismatch[T any, C1 cursor.Forward[T, C1], C2 cursor.Forward[T, C2]](
	first1, last1 C1, first2, last2 C2, eq func(a, b T) bool,
) (C1, C2) {
	for !first1.Equal(last1) && !first2.Equal(last2) && eq(first1.Get(), first2.Get()) {
		first1, first2 = first1.Next(), first2.Next()
	}
	return first1, first2
}

// EqualFunc reports whether both ranges have the same length and eq holds
// pairwise.
func EqualFunc[T any, C1 cursor.Forward[T, C1], C2 cursor.Forward[T, C2]](
	first1, last1 C1, first2, last2 C2, eq func(a, b T) bool,
) bool {
	m1, m2 := Mismatch(first1, last1, first2, last2, eq)
	return m1.Equal(last1) && m2.Equal(last2)
}
