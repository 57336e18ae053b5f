package introsort_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/introsort"
	"github.com/katalvlaran/lvlseq/order"
)

// ExampleSort sorts a slice through its cursor range.
func ExampleSort() {
	data := []int{5, 3, 8, 1, 9, 2}
	first, last := cursor.Range(data)
	introsort.Sort(first, last, order.Natural[int])
	fmt.Println(data)

	// Output:
	// [1 2 3 5 8 9]
}

// ExampleWithOnFallback shows the heapsort safety valve on a hostile pivot stream.
func ExampleWithOnFallback() {
	data := make([]int, 100)
	for i := range data {
		data[i] = i
	}

	first, last := cursor.Range(data)
	introsort.Sort(first, last, order.Natural[int],
		introsort.WithSource(worst{}),
		introsort.WithOnFallback(func(n int) { fmt.Println("heapsort on", n, "elements") }),
	)
	fmt.Println(data[0], data[99])

	// Output:
	// heapsort on 87 elements
	// 0 99
}

type worst struct{}

func (worst) Intn(n int) int { return n - 1 }
