// SPDX-License-Identifier: MIT

package cursor

import "container/list"

// List is a bidirectional cursor over a container/list whose values all hold
// a T. The end position carries a nil element.
type List[T any] struct {
	l *list.List
	e *list.Element
}

var _ Bidirectional[int, List[int]] = List[int]{}

// ListRange returns [front, end) of l.
func ListRange[T any](l *list.List) (first, last List[T]) {
	return List[T]{l: l, e: l.Front()}, List[T]{l: l}
}

// Element returns the underlying element, nil at the end position.
func (c List[T]) Element() *list.Element { return c.e }

// Get reads the element's value.
func (c List[T]) Get() T { return c.e.Value.(T) }

// Set replaces the element's value.
func (c List[T]) Set(v T) { c.e.Value = v }

// Next moves to the following element; past the back it becomes the end.
func (c List[T]) Next() List[T] { return List[T]{l: c.l, e: c.e.Next()} }

// Prev moves to the preceding element; from the end it lands on the back.
func (c List[T]) Prev() List[T] {
	if c.e == nil {
		return List[T]{l: c.l, e: c.l.Back()}
	}
	return List[T]{l: c.l, e: c.e.Prev()}
}

// Equal compares element identity.
func (c List[T]) Equal(other List[T]) bool { return c.e == other.e }
