package order_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlseq/order"
)

type person struct {
	name string
	age  int
}

func TestNaturalAndGreater(t *testing.T) {
	assert.True(t, order.Natural(1, 2))
	assert.False(t, order.Natural(2, 2))
	assert.True(t, order.Natural("a", "b"))

	assert.True(t, order.Greater(2, 1))
	assert.False(t, order.Greater(1, 1))
}

func TestFloat_NaNFirst(t *testing.T) {
	nan := math.NaN()
	assert.True(t, order.Float(nan, -math.MaxFloat64))
	assert.False(t, order.Float(1.0, nan))
	assert.False(t, order.Float(nan, nan), "NaN must be irreflexive")
	assert.True(t, order.Float(1.0, 2.0))
	assert.True(t, order.Float(math.Inf(-1), 0.0))
}

func TestLess_Reverse(t *testing.T) {
	var l order.Less[int] = order.Natural[int]
	r := l.Reverse()
	assert.True(t, r(3, 1))
	assert.False(t, r(1, 3))
	assert.False(t, r(2, 2))
}

func TestLess_ThenAndBy(t *testing.T) {
	byAge := order.By(func(p person) int { return p.age })
	byName := order.By(func(p person) string { return p.name })
	l := byAge.Then(byName)

	ann := person{"ann", 30}
	bob := person{"bob", 30}
	cid := person{"cid", 20}

	assert.True(t, l(ann, bob), "tie on age broken by name")
	assert.False(t, l(bob, ann))
	assert.True(t, l(cid, ann), "age decides first")
	assert.False(t, l(ann, ann))
}

func TestLess_Equivalent(t *testing.T) {
	caseless := order.By(strings.ToLower)
	assert.True(t, caseless.Equivalent("Go", "gO"))
	assert.False(t, caseless.Equivalent("go", "gopher"))
}

func TestFromCompareAndCompare(t *testing.T) {
	l := order.FromCompare(strings.Compare)
	assert.True(t, l("a", "b"))
	assert.False(t, l("b", "a"))

	assert.Equal(t, -1, order.Compare(l, "a", "b"))
	assert.Equal(t, 1, order.Compare(l, "b", "a"))
	assert.Equal(t, 0, order.Compare(l, "x", "x"))
}
