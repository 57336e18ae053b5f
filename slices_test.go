package lvlseq_test

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq"
	"github.com/katalvlaran/lvlseq/introsort"
	"github.com/katalvlaran/lvlseq/order"
)

func TestSort_Facade(t *testing.T) {
	xs := []int{5, 3, 8, 1, 9, 2}
	lvlseq.Sort(xs)
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, xs)
	assert.True(t, lvlseq.IsSorted(xs))

	words := []string{"b", "C", "a"}
	lvlseq.SortFunc(words, order.By(strings.ToLower))
	assert.Equal(t, []string{"a", "b", "C"}, words)
	assert.False(t, lvlseq.IsSorted(words))
	assert.True(t, lvlseq.IsSortedFunc(words, order.By(strings.ToLower)))
}

func TestSort_FloatsWithNaN(t *testing.T) {
	xs := []float64{3, math.NaN(), -1, 2, math.NaN()}
	lvlseq.SortFunc(xs, order.Float[float64])
	assert.True(t, math.IsNaN(xs[0]))
	assert.True(t, math.IsNaN(xs[1]))
	assert.Equal(t, []float64{-1, 2, 3}, xs[2:])
}

func TestSort_Large(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	xs := make([]int, 5000)
	for i := range xs {
		xs[i] = r.Intn(1000)
	}
	want := append([]int(nil), xs...)
	sort.Ints(want)

	lvlseq.Sort(xs, introsort.WithSeed(3))
	require.Equal(t, want, xs)
}

func TestHeap_Facade(t *testing.T) {
	xs := []int{1, 5, 2, 4, 3}
	lvlseq.MakeHeap(xs)
	require.True(t, lvlseq.IsHeap(xs))
	assert.Equal(t, 5, xs[0])

	xs = append(xs, 7)
	lvlseq.PushHeap(xs)
	assert.Equal(t, 7, xs[0])

	lvlseq.PopHeap(xs)
	assert.Equal(t, 7, xs[len(xs)-1])
	assert.True(t, lvlseq.IsHeap(xs[:len(xs)-1]))

	xs = xs[:len(xs)-1]
	lvlseq.SortHeap(xs)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, xs)

	mins := []int{4, 1, 3}
	lvlseq.MakeHeapFunc(mins, order.Greater[int])
	assert.Equal(t, 1, mins[0])
	assert.True(t, lvlseq.IsHeapFunc(mins, order.Greater[int]))
	lvlseq.PushHeapFunc(mins, order.Greater[int])
	lvlseq.PopHeapFunc(mins, order.Greater[int])
	assert.Equal(t, 1, mins[2])
	lvlseq.SortHeapFunc(mins[:2], order.Greater[int])
	assert.Equal(t, []int{4, 3, 1}, mins)
}

func TestSearch_Facade(t *testing.T) {
	xs := []int{1, 2, 2, 2, 5}
	assert.Equal(t, 1, lvlseq.LowerBound(xs, 2))
	assert.Equal(t, 4, lvlseq.UpperBound(xs, 2))
	lo, hi := lvlseq.EqualRange(xs, 2)
	assert.Equal(t, [2]int{1, 4}, [2]int{lo, hi})
	assert.True(t, lvlseq.BinarySearch(xs, 2))
	assert.False(t, lvlseq.BinarySearch(xs, 3))
	assert.Equal(t, 5, lvlseq.LowerBound(xs, 6))

	desc := []int{5, 2, 2, 1}
	assert.Equal(t, 1, lvlseq.LowerBoundFunc(desc, 2, order.Greater[int]))
	assert.Equal(t, 3, lvlseq.UpperBoundFunc(desc, 2, order.Greater[int]))
	lo, hi = lvlseq.EqualRangeFunc(desc, 2, order.Greater[int])
	assert.Equal(t, [2]int{1, 3}, [2]int{lo, hi})
	assert.True(t, lvlseq.BinarySearchFunc(desc, 5, order.Greater[int]))
}

func TestMinMax_Facade(t *testing.T) {
	xs := []int{3, 1, 4, 1, 5, 9, 2, 6, 9}
	assert.Equal(t, 1, lvlseq.MinElement(xs))
	assert.Equal(t, 5, lvlseq.MaxElement(xs))
	lo, hi := lvlseq.MinMaxElement(xs)
	assert.Equal(t, 1, lo, "first smallest")
	assert.Equal(t, 8, hi, "last largest")

	assert.Equal(t, 5, lvlseq.MinElementFunc(xs, order.Greater[int]))
	assert.Equal(t, 1, lvlseq.MaxElementFunc(xs, order.Greater[int]))
	lo, hi = lvlseq.MinMaxElementFunc(xs, order.Greater[int])
	assert.Equal(t, [2]int{5, 3}, [2]int{lo, hi})

	var empty []int
	assert.Equal(t, 0, lvlseq.MinElement(empty))
	assert.Equal(t, 0, lvlseq.MaxElement(empty))
	lo, hi = lvlseq.MinMaxElement(empty)
	assert.Equal(t, [2]int{0, 0}, [2]int{lo, hi})
}

func TestCompare_Facade(t *testing.T) {
	cases := []struct {
		a, b []int
		want int
	}{
		{nil, nil, 0},
		{nil, []int{1}, -1},
		{[]int{1, 2}, []int{1, 2}, 0},
		{[]int{1, 2}, []int{1, 2, 0}, -1},
		{[]int{1, 3}, []int{1, 2, 9}, +1},
		{[]int{0}, []int{1}, -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, lvlseq.Compare(tc.a, tc.b), "%v vs %v", tc.a, tc.b)
	}
	assert.Equal(t, 0, lvlseq.CompareFunc([]string{"A"}, []string{"a"}, order.By(strings.ToLower)))
}
