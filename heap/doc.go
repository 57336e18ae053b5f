// SPDX-License-Identifier: MIT

// Package heap maintains binary max-heaps embedded in random-access ranges.
//
// 🚀 Layout
//
//	An implicit complete binary tree: node i has children 2i+1 and 2i+2 and
//	parent (i-1)/2. The heap invariant, with respect to a strict weak ordering
//	less, is that no parent strictly precedes any of its children, i.e. the
//	front is a maximum.
//
// ✨ Operations
//   - Make      - heapify an arbitrary range in O(n).
//   - Push      - sift the last element of [first, last) up into the heap [first, last-1).
//   - Pop       - move the maximum to last-1 and restore the heap on [first, last-1).
//   - Sort      - pop repeatedly, leaving the range ascending. O(n log n).
//   - IsHeap / IsHeapUntil - single forward scan of parent/child pairs.
//   - Queue     - a small slice-backed priority queue built on the above.
//
// Pop uses the "hole" strategy: the root hole walks down promoting the larger
// child until it reaches the bottom, and only then is the displaced element
// sifted back up.
//
// Failure safety: if less panics, the panic propagates unchanged and the range
// still holds exactly the original elements (a permutation), because the one
// lifted value is written back into the current hole on the way out.
//
// Usage:
//
//	first, last := cursor.Range(data)
//	heap.Make(first, last, order.Natural[int])
//	heap.Pop(first, last, order.Natural[int]) // max now at data[len(data)-1]
package heap
