// SPDX-License-Identifier: MIT

package cursor

import "errors"

// ErrNotBidirectional is the panic value (wrapped) raised when a forward-only
// cursor is asked to move backwards.
var ErrNotBidirectional = errors.New("cursor: cursor is not bidirectional")

// Forward is a single-pass-or-better cursor over elements of type T.
// Next on the end position is undefined.
type Forward[T any, C any] interface {
	// Get reads the element at the cursor.
	Get() T
	// Set overwrites the element at the cursor.
	Set(v T)
	// Next returns the successor position.
	Next() C
	// Equal reports whether both cursors denote the same position.
	Equal(other C) bool
}

// Bidirectional adds a predecessor step to Forward.
type Bidirectional[T any, C any] interface {
	Forward[T, C]
	// Prev returns the predecessor position. Prev on the end position
	// yields the last element.
	Prev() C
}

// RandomAccess adds O(1) offset arithmetic to Bidirectional.
type RandomAccess[T any, C any] interface {
	Bidirectional[T, C]
	// Add returns the cursor n positions away (n may be negative).
	Add(n int) C
	// Sub returns the signed distance from other to the receiver,
	// so first.Add(last.Sub(first)) equals last.
	Sub(other C) int
}

// Contiguous is implemented by cursors whose next n elements live in one
// Go slice. It is a performance hint only.
type Contiguous[T any] interface {
	Span(n int) []T
}

// Category tags the traversal capability of a cursor.
type Category int

const (
	// ForwardCategory: successor steps only.
	ForwardCategory Category = iota
	// BidirectionalCategory: successor and predecessor steps.
	BidirectionalCategory
	// RandomAccessCategory: O(1) offsets and distances.
	RandomAccessCategory
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case ForwardCategory:
		return "forward"
	case BidirectionalCategory:
		return "bidirectional"
	case RandomAccessCategory:
		return "random-access"
	default:
		return "unknown"
	}
}
