// SPDX-License-Identifier: MIT

package cursor

import "fmt"

// CategoryOf reports the strongest capability c's dynamic type implements.
func CategoryOf[T any, C Forward[T, C]](c C) Category {
	switch any(c).(type) {
	case RandomAccess[T, C]:
		return RandomAccessCategory
	case Bidirectional[T, C]:
		return BidirectionalCategory
	default:
		return ForwardCategory
	}
}

// Distance returns the number of steps from first to last.
// O(1) for random-access cursors, O(n) otherwise.
func Distance[T any, C Forward[T, C]](first, last C) int {
	if ra, ok := any(last).(RandomAccess[T, C]); ok {
		return ra.Sub(first)
	}
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Advance returns c moved n steps. Negative n requires a bidirectional
// cursor; a forward-only cursor panics with an error wrapping
// ErrNotBidirectional.
func Advance[T any, C Forward[T, C]](c C, n int) C {
	if ra, ok := any(c).(RandomAccess[T, C]); ok {
		return ra.Add(n)
	}
	for ; n > 0; n-- {
		c = c.Next()
	}
	for ; n < 0; n++ {
		bd, ok := any(c).(Bidirectional[T, C])
		if !ok {
			panic(fmt.Errorf("%w: advance by %d", ErrNotBidirectional, n))
		}
		c = bd.Prev()
	}
	return c
}

// IterSwap exchanges the elements under a and b.
func IterSwap[T any, C Forward[T, C]](a, b C) {
	v := a.Get()
	a.Set(b.Get())
	b.Set(v)
}
