// SPDX-License-Identifier: MIT

package introsort

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// partition moves a randomly chosen pivot of [first, last) to its sorted
// offset p and returns p. Afterwards nothing in [first, first+p) fails to
// precede the pivot and nothing in (first+p, last) precedes it.
// The pivot offset is src.Intn(n), uniform over [0, n-1] inclusive, so the
// last element can be chosen too.
// Requires last-first >= 1. Only swaps are performed.
func partition[T any, C cursor.RandomAccess[T, C]](first, last C, less order.Less[T], src Source) int {
	n := last.Sub(first)
	back := last.Prev()
	if p := src.Intn(n); p != n-1 {
		cursor.IterSwap[T](first.Add(p), back)
	}
	pivot := back.Get()

	i := 0
	for j := 0; j < n-1; j++ {
		cur := first.Add(j)
		if less(cur.Get(), pivot) {
			if i != j {
				cursor.IterSwap[T](first.Add(i), cur)
			}
			i++
		}
	}
	if i != n-1 {
		cursor.IterSwap[T](first.Add(i), back)
	}
	return i
}
