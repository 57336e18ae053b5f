package algo_test

import (
	"container/list"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlseq/algo"
	"github.com/katalvlaran/lvlseq/cursor"
)

func listOf(vals ...int) *list.List {
	l := list.New()
	for _, v := range vals {
		l.PushBack(v)
	}
	return l
}

func listValues(l *list.List) []int {
	out := make([]int, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int))
	}
	return out
}

func TestFill_ContiguousAndLinked(t *testing.T) {
	for n := 0; n <= 9; n++ {
		s := make([]int, n+2)
		first := cursor.Begin(s).Next()
		algo.Fill(first, first.Add(n), 7)

		want := make([]int, n+2)
		for i := 1; i <= n; i++ {
			want[i] = 7
		}
		if diff := cmp.Diff(want, s); diff != "" {
			t.Errorf("Fill n=%d mismatch (-want +got):\n%s", n, diff)
		}
	}

	l := listOf(1, 2, 3)
	lf, ll := cursor.ListRange[int](l)
	algo.Fill(lf, ll, 0)
	assert.Equal(t, []int{0, 0, 0}, listValues(l))
}

func TestFillN(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	end := algo.FillN(cursor.Begin(s), 3, 9)
	assert.Equal(t, 3, end.Index())
	assert.Equal(t, []int{9, 9, 9, 4, 5}, s)

	assert.Equal(t, 0, algo.FillN(cursor.Begin(s), -1, 0).Index())

	l := listOf(1, 2, 3)
	lf, _ := cursor.ListRange[int](l)
	lend := algo.FillN(lf, 2, 5)
	assert.Equal(t, 3, lend.Get())
	assert.Equal(t, []int{5, 5, 3}, listValues(l))
}

func TestCopy(t *testing.T) {
	src := []int{1, 2, 3}
	dst := make([]int, 5)
	end := algo.Copy[int](cursor.Begin(src), cursor.End(src), cursor.Begin(dst).Next())
	assert.Equal(t, 4, end.Index())
	assert.Equal(t, []int{0, 1, 2, 3, 0}, dst)

	// slice → list takes the stepping path
	l := listOf(0, 0, 0, 0)
	lf, _ := cursor.ListRange[int](l)
	lend := algo.Copy[int](cursor.Begin(src), cursor.End(src), lf)
	assert.Equal(t, []int{1, 2, 3, 0}, listValues(l))
	assert.Same(t, l.Back(), lend.Element())

	// overlapping shift left through the contiguous path
	s := []int{1, 2, 3, 4, 5}
	algo.Copy[int](cursor.Begin(s).Add(1), cursor.End(s), cursor.Begin(s))
	assert.Equal(t, []int{2, 3, 4, 5, 5}, s)
}

func TestSwapRanges(t *testing.T) {
	a := []int{1, 2, 3}
	l := listOf(7, 8, 9, 10)
	lf, _ := cursor.ListRange[int](l)
	end := algo.SwapRanges[int](cursor.Begin(a), cursor.End(a), lf)
	assert.Equal(t, []int{7, 8, 9}, a)
	assert.Equal(t, []int{1, 2, 3, 10}, listValues(l))
	assert.Equal(t, 10, end.Get())
}

func TestReverse(t *testing.T) {
	for n := 0; n <= 6; n++ {
		s := make([]int, n)
		want := make([]int, n)
		for i := range s {
			s[i] = i
			want[n-1-i] = i
		}
		first, last := cursor.Range(s)
		algo.Reverse[int](first, last)
		assert.Equal(t, want, s, "n=%d", n)
	}

	l := listOf(1, 2, 3, 4)
	lf, ll := cursor.ListRange[int](l)
	algo.Reverse[int](lf, ll)
	assert.Equal(t, []int{4, 3, 2, 1}, listValues(l))
}

func TestRotate(t *testing.T) {
	base := []int{0, 1, 2, 3, 4, 5, 6}
	for k := 0; k <= len(base); k++ {
		s := append([]int(nil), base...)
		first, last := cursor.Range(s)
		ret := algo.Rotate[int](first, first.Add(k), last)

		want := append(append([]int(nil), base[k:]...), base[:k]...)
		assert.Equal(t, want, s, "k=%d", k)
		assert.Equal(t, len(base)-k, ret.Index(), "k=%d return position", k)
	}

	l := listOf(1, 2, 3, 4, 5)
	lf, ll := cursor.ListRange[int](l)
	mid := cursor.Advance[int](lf, 2)
	ret := algo.Rotate[int](lf, mid, ll)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, listValues(l))
	assert.Equal(t, 1, ret.Get())
}
