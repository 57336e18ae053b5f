// SPDX-License-Identifier: MIT

package cursor

// Slice is a random-access, contiguous cursor over a Go slice.
// The zero value is an empty range's begin/end.
type Slice[T any] struct {
	s []T
	i int
}

var (
	_ RandomAccess[int, Slice[int]] = Slice[int]{}
	_ Contiguous[int]               = Slice[int]{}
)

// Begin returns a cursor at s[0].
func Begin[T any](s []T) Slice[T] { return Slice[T]{s: s} }

// End returns the one-past-the-end cursor of s.
func End[T any](s []T) Slice[T] { return Slice[T]{s: s, i: len(s)} }

// Range returns [Begin(s), End(s)).
func Range[T any](s []T) (first, last Slice[T]) {
	return Begin(s), End(s)
}

// Index returns the cursor's position in the underlying slice.
func (c Slice[T]) Index() int { return c.i }

// Get reads s[i].
func (c Slice[T]) Get() T { return c.s[c.i] }

// Set writes s[i]. The receiver is a value but shares the backing array.
func (c Slice[T]) Set(v T) { c.s[c.i] = v }

// Next returns the cursor at i+1.
func (c Slice[T]) Next() Slice[T] { return Slice[T]{s: c.s, i: c.i + 1} }

// Prev returns the cursor at i-1.
func (c Slice[T]) Prev() Slice[T] { return Slice[T]{s: c.s, i: c.i - 1} }

// Add returns the cursor at i+n.
func (c Slice[T]) Add(n int) Slice[T] { return Slice[T]{s: c.s, i: c.i + n} }

// Sub returns c.Index() - other.Index().
func (c Slice[T]) Sub(other Slice[T]) int { return c.i - other.i }

// Equal compares positions; both cursors must come from the same slice.
func (c Slice[T]) Equal(other Slice[T]) bool { return c.i == other.i }

// Span exposes s[i:i+n] with capacity clipped to n.
func (c Slice[T]) Span(n int) []T { return c.s[c.i : c.i+n : c.i+n] }
