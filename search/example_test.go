package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
	"github.com/katalvlaran/lvlseq/search"
)

// ExampleEqualRange finds the run of duplicates of a value.
func ExampleEqualRange() {
	data := []int{1, 2, 2, 2, 5}
	first, last := cursor.Range(data)

	lo, hi := search.EqualRange(first, last, 2, order.Natural[int])
	fmt.Println(lo.Index(), hi.Index(), hi.Sub(lo))

	// Output:
	// 1 4 3
}

// ExampleLowerBound computes an insertion point that keeps the slice sorted.
func ExampleLowerBound() {
	data := []int{10, 20, 30}
	first, last := cursor.Range(data)

	at := search.LowerBound(first, last, 25, order.Natural[int]).Index()
	data = append(data[:at], append([]int{25}, data[at:]...)...)
	fmt.Println(data)

	// Output:
	// [10 20 25 30]
}
