// SPDX-License-Identifier: MIT

package heap

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// siftUp places val into the heap starting at the vacant position hole,
// moving parents down while they strictly precede val, never climbing above
// top. The final write happens in a defer so a panicking less still leaves
// val in the current hole.
func siftUp[T any, C cursor.RandomAccess[T, C]](first C, hole, top int, val T, less order.Less[T]) {
	defer func() { first.Add(hole).Set(val) }()

	for parent := (hole - 1) / 2; top < hole; parent = (hole - 1) / 2 {
		p := first.Add(parent)
		pv := p.Get()
		if !less(pv, val) {
			break
		}
		first.Add(hole).Set(pv) // parent moves down
		hole = parent
	}
}

// adjust sifts the vacant position hole of the n-element heap at first down
// to a leaf, always promoting the larger child, then re-inserts val from
// there with siftUp bounded by the original hole.
func adjust[T any, C cursor.RandomAccess[T, C]](first C, hole, n int, val T, less order.Less[T]) {
	top := hole
	placed := false
	defer func() {
		if !placed {
			first.Add(hole).Set(val)
		}
	}()

	child := 2*hole + 2 // right child
	for child < n {
		if less(first.Add(child).Get(), first.Add(child-1).Get()) {
			child-- // left child is larger
		}
		first.Add(hole).Set(first.Add(child).Get())
		hole = child
		child = 2*child + 2
	}
	if child == n {
		// lone left child
		first.Add(hole).Set(first.Add(child - 1).Get())
		hole = child - 1
	}

	placed = true
	siftUp(first, hole, top, val, less)
}
