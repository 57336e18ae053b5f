// SPDX-License-Identifier: MIT

package introsort

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// insertionSort sorts [first, last) by shifting. Stable in practice, though
// the engine as a whole makes no stability promise.
func insertionSort[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T]) {
	n := last.Sub(first)
	for i := 1; i < n; i++ {
		if less(first.Add(i).Get(), first.Add(i-1).Get()) {
			insert(first, i, less)
		}
	}
}

// insert shifts the element at offset i left past every predecessor it
// precedes. The lifted key is written into the current hole on return,
// including when less panics.
func insert[T any, C cursor.RandomAccess[T, C]](first C, i int, less order.Less[T]) {
	key := first.Add(i).Get()
	hole := i
	defer func() { first.Add(hole).Set(key) }()

	for hole > 0 {
		prev := first.Add(hole - 1).Get()
		if !less(key, prev) {
			break
		}
		first.Add(hole).Set(prev)
		hole--
	}
}
