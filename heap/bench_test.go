package heap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/heap"
	"github.com/katalvlaran/lvlseq/order"
)

func benchInput(n int) []int {
	r := rand.New(rand.NewSource(1))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Int()
	}
	return out
}

// BenchmarkMakeSort measures full heapsort on 10k random ints.
func BenchmarkMakeSort(b *testing.B) {
	src := benchInput(10000)
	buf := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		first, last := cursor.Range(buf)
		heap.Make(first, last, order.Natural[int])
		heap.Sort(first, last, order.Natural[int])
	}
}

// BenchmarkQueue measures a push/pop churn on a 1k-element queue.
func BenchmarkQueue(b *testing.B) {
	q := heap.NewQueue(order.Natural[int], benchInput(1000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := q.Pop()
		q.Push(v ^ i)
	}
}
