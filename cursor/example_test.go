package cursor_test

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/cursor"
)

// ExampleRange walks a slice through its cursor pair.
func ExampleRange() {
	data := []string{"a", "b", "c"}
	first, last := cursor.Range(data)

	for c := first; !c.Equal(last); c = c.Next() {
		fmt.Print(c.Get())
	}
	fmt.Println()
	fmt.Println(cursor.Distance[string](first, last), cursor.CategoryOf[string](first))

	// Output:
	// abc
	// 3 random-access
}
