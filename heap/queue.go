// SPDX-License-Identifier: MIT

package heap

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// Queue is a max-priority queue backed by a slice kept in heap order.
// The zero value is not usable; create queues with NewQueue.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	items []T
	less  order.Less[T]
}

// NewQueue returns a queue ordered by less, seeded with a copy of items.
func NewQueue[T any](less order.Less[T], items ...T) *Queue[T] {
	q := &Queue[T]{
		items: append(make([]T, 0, len(items)), items...),
		less:  less,
	}
	first, last := cursor.Range(q.items)
	Make(first, last, q.less)
	return q
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) }

// Push adds v.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
	first, last := cursor.Range(q.items)
	Push(first, last, q.less)
}

// Peek returns the maximum without removing it; ok is false on an empty queue.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if len(q.items) == 0 {
		return v, false
	}
	return q.items[0], true
}

// Pop removes and returns the maximum; ok is false on an empty queue.
func (q *Queue[T]) Pop() (v T, ok bool) {
	n := len(q.items)
	if n == 0 {
		return v, false
	}
	first, last := cursor.Range(q.items)
	Pop(first, last, q.less)

	v = q.items[n-1]
	var zero T
	q.items[n-1] = zero // drop the reference for the GC
	q.items = q.items[:n-1]
	return v, true
}

// Drain empties the queue and returns its items from largest to smallest.
func (q *Queue[T]) Drain() []T {
	out := make([]T, 0, len(q.items))
	for {
		v, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
