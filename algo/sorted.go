// SPDX-License-Identifier: MIT

package algo

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// IsSortedUntil returns the first position whose element precedes its
// predecessor, or last if the whole range is sorted.
func IsSortedUntil[T any, C cursor.Forward[T, C]](first, last C, less order.Less[T]) C {
	if first.Equal(last) {
		return last
	}
	for next := first.Next(); !next.Equal(last); first, next = next, next.Next() {
		if less(next.Get(), first.Get()) {
			return next
		}
	}
	return last
}

// IsSorted reports whether no element of [first, last) precedes its
// predecessor. Empty and single-element ranges are sorted.
func IsSorted[T any, C cursor.Forward[T, C]](first, last C, less order.Less[T]) bool {
	return IsSortedUntil(first, last, less).Equal(last)
}
