// SPDX-License-Identifier: MIT

package algo

import (
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

// LexicographicalCompare reports whether [first1, last1) precedes
// [first2, last2). The first mismatching pair decides; if one range is a
// proper prefix of the other, the shorter one is less. Equal ranges are not
// less.
//
// Complexity: at most 2·min(n1, n2) comparisons.
func LexicographicalCompare[T any, C1 cursor.Forward[T, C1], C2 cursor.Forward[T, C2]](
	first1, last1 C1, first2, last2 C2, less order.Less[T],
) bool {
	for ; !first1.Equal(last1) && !first2.Equal(last2); first1, first2 = first1.Next(), first2.Next() {
		a, b := first1.Get(), first2.Get()
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
	}
	return first1.Equal(last1) && !first2.Equal(last2)
}
