// SPDX-License-Identifier: MIT

package heap

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// Push extends the heap [first, last-1) with the element at last-1.
// Ranges shorter than two elements are left untouched.
//
// Complexity: O(log n) comparisons.
func Push[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T]) {
	n := last.Sub(first)
	if n < 2 {
		return
	}
	siftUp(first, n-1, 0, last.Prev().Get(), less)
}

// Pop swaps the maximum of the heap [first, last) to last-1 and restores the
// heap invariant on [first, last-1).
//
// Complexity: O(log n) comparisons.
func Pop[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T]) {
	n := last.Sub(first)
	if n < 2 {
		return
	}
	back := last.Prev()
	val := back.Get()
	back.Set(first.Get())
	adjust(first, 0, n-1, val, less)
}

// Make rearranges [first, last) into a heap by adjusting every internal node
// from the last parent (n-2)/2 back to the root.
//
// Complexity: O(n) comparisons.
func Make[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T]) {
	n := last.Sub(first)
	if n < 2 {
		return
	}
	for parent := (n - 2) / 2; parent >= 0; parent-- {
		adjust(first, parent, n, first.Add(parent).Get(), less)
	}
}

// Sort turns the heap [first, last) into an ascending range by popping the
// maximum into the shrinking tail until one element remains.
//
// Complexity: O(n log n) comparisons.
func Sort[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T]) {
	for n := last.Sub(first); n > 1; n-- {
		Pop(first, first.Add(n), less)
	}
}

// IsHeapUntil returns the first position whose parent strictly precedes it,
// or last if [first, last) is a heap.
//
// Complexity: O(n) comparisons.
func IsHeapUntil[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T]) C {
	n := last.Sub(first)
	for off := 1; off < n; off++ {
		if less(first.Add((off-1)/2).Get(), first.Add(off).Get()) {
			return first.Add(off)
		}
	}
	return last
}

// IsHeap reports whether [first, last) satisfies the heap invariant.
// Empty and single-element ranges are heaps.
func IsHeap[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T]) bool {
	return IsHeapUntil(first, last, less).Equal(last)
}
