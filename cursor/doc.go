// SPDX-License-Identifier: MIT

// Package cursor defines the traversal contracts every lvlseq algorithm is
// written against, plus thin adapters for Go slices and container/list.
//
// Capabilities grow in three steps:
//
//	Forward        Get, Set, Next, Equal
//	Bidirectional  Forward + Prev
//	RandomAccess   Bidirectional + Add, Sub (O(1) offset and distance)
//
// The interfaces are self-typed: a cursor type C satisfies Forward[T, C] when
// its Next method returns another C. Algorithms state the weakest capability
// they need in their type parameters, so a sort over a list cursor fails to
// compile instead of silently degrading.
//
// A range is the half-open pair [first, last); last is never dereferenced and
// both cursors must belong to the same sequence.
//
// Usage:
//
//	data := []int{5, 3, 8}
//	first, last := cursor.Range(data)
//	n := cursor.Distance[int](first, last) // 3
//
// Contiguous is an optional, performance-only capability: cursors that can
// expose the next n elements as a Go slice let fill/copy primitives use the
// builtin copy. Correctness never depends on it.
package cursor
