//go:build lvlseqdebug

package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/cursor"
	"github.com/katalvlaran/lvlseq/search"
)

func TestUnsortedPanics(t *testing.T) {
	data := []int{3, 1, 2}
	first, last := cursor.Range(data)

	ops := map[string]func(){
		"LowerBound":   func() { search.LowerBound(first, last, 2, less) },
		"UpperBound":   func() { search.UpperBound(first, last, 2, less) },
		"EqualRange":   func() { search.EqualRange(first, last, 2, less) },
		"BinarySearch": func() { search.BinarySearch(first, last, 2, less) },
	}
	for name, op := range ops {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, name)
				err, ok := r.(error)
				require.True(t, ok, name)
				require.True(t, errors.Is(err, search.ErrUnsorted), name)
			}()
			op()
		}()
	}
}
