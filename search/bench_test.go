package search_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
	"github.com/katalvlaran/lvlseq/search"
)

// BenchmarkLowerBound probes a 1M-element sorted slice.
func BenchmarkLowerBound(b *testing.B) {
	data := make([]int, 1<<20)
	for i := range data {
		data[i] = i * 2
	}
	first, last := cursor.Range(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.LowerBound(first, last, (i*7919)%(1<<21), order.Natural[int])
	}
}

// BenchmarkEqualRange probes a slice with long runs of duplicates.
func BenchmarkEqualRange(b *testing.B) {
	data := make([]int, 1<<16)
	for i := range data {
		data[i] = i / 64
	}
	first, last := cursor.Range(data)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.EqualRange(first, last, i%1024, order.Natural[int])
	}
}
