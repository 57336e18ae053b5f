package algo_test

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlseq/algo"
	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/order"
)

func TestIsSorted(t *testing.T) {
	cases := []struct {
		in    []int
		want  bool
		until int
	}{
		{nil, true, 0},
		{[]int{1}, true, 1},
		{[]int{1, 1, 2, 2}, true, 4},
		{[]int{1, 3, 2}, false, 2},
		{[]int{2, 1}, false, 1},
	}
	for _, tc := range cases {
		first, last := cursor.Range(tc.in)
		assert.Equal(t, tc.want, algo.IsSorted(first, last, order.Natural[int]), "%v", tc.in)
		assert.Equal(t, tc.until, algo.IsSortedUntil(first, last, order.Natural[int]).Index(), "%v", tc.in)
	}
}

func TestIsSorted_CustomOrderAndList(t *testing.T) {
	l := list.New()
	for _, v := range []int{9, 7, 7, 1} {
		l.PushBack(v)
	}
	first, last := cursor.ListRange[int](l)
	assert.True(t, algo.IsSorted(first, last, order.Greater[int]))
	assert.False(t, algo.IsSorted(first, last, order.Natural[int]))
	assert.Equal(t, 7, algo.IsSortedUntil(first, last, order.Natural[int]).Get())
}
