// SPDX-License-Identifier: MIT

package algo

import "github.com/katalvlaran/lvlseq/cursor"

// Fill assigns v to every element of [first, last). Contiguous cursors are
// filled through their slice view.
func Fill[T any, C cursor.Forward[T, C]](first, last C, v T) {
	if sp, ok := any(first).(cursor.Contiguous[T]); ok {
		fillSlice(sp.Span(cursor.Distance[T](first, last)), v)
		return
	}
	for ; !first.Equal(last); first = first.Next() {
		first.Set(v)
	}
}

// FillN assigns v to n elements starting at first and returns the position
// after the last one written. n <= 0 writes nothing.
func FillN[T any, C cursor.Forward[T, C]](first C, n int, v T) C {
	if n <= 0 {
		return first
	}
	if sp, ok := any(first).(cursor.Contiguous[T]); ok {
		fillSlice(sp.Span(n), v)
		return cursor.Advance[T](first, n)
	}
	for ; n > 0; n-- {
		first.Set(v)
		first = first.Next()
	}
	return first
}

// fillSlice seeds s[0] and doubles the filled prefix with the builtin copy.
func fillSlice[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for filled := 1; filled < len(s); filled *= 2 {
		copy(s[filled:], s[:filled])
	}
}

// Copy writes [first, last) to dest and returns the position after the last
// element written. When both sides are contiguous the builtin copy is used,
// which is also safe for overlapping slices.
func Copy[T any, C1 cursor.Forward[T, C1], C2 cursor.Forward[T, C2]](first, last C1, dest C2) C2 {
	src, srcOK := any(first).(cursor.Contiguous[T])
	dst, dstOK := any(dest).(cursor.Contiguous[T])
	if srcOK && dstOK {
		n := cursor.Distance[T](first, last)
		copy(dst.Span(n), src.Span(n))
		return cursor.Advance[T](dest, n)
	}
	for ; !first.Equal(last); first, dest = first.Next(), dest.Next() {
		dest.Set(first.Get())
	}
	return dest
}

// SwapRanges exchanges [first1, last1) with the range of equal length at
// first2 and returns the end of the second range.
func SwapRanges[T any, C1 cursor.Forward[T, C1], C2 cursor.Forward[T, C2]](first1, last1 C1, first2 C2) C2 {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		v := first1.Get()
		first1.Set(first2.Get())
		first2.Set(v)
	}
	return first2
}

// Reverse reverses [first, last) in place.
func Reverse[T any, C cursor.Bidirectional[T, C]](first, last C) {
	for !first.Equal(last) {
		last = last.Prev()
		if first.Equal(last) {
			return
		}
		cursor.IterSwap[T](first, last)
		first = first.Next()
	}
}

// Rotate moves [mid, last) in front of [first, mid) with forward steps only
// and returns the new position of the element originally at first, i.e.
// first + (last - mid).
func Rotate[T any, C cursor.Forward[T, C]](first, mid, last C) C {
	if first.Equal(mid) {
		return last
	}
	if mid.Equal(last) {
		return first
	}

	next := mid
	for {
		cursor.IterSwap[T](first, next)
		first, next = first.Next(), next.Next()
		if first.Equal(mid) {
			mid = next
		}
		if next.Equal(last) {
			break
		}
	}

	ret := first
	for next = mid; !next.Equal(last); {
		cursor.IterSwap[T](first, next)
		first, next = first.Next(), next.Next()
		if first.Equal(mid) {
			mid = next
		} else if next.Equal(last) {
			next = mid
		}
	}
	return ret
}
