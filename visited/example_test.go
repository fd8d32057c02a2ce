package visited_test

import (
	"fmt"

	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/visited"
)

// ExampleTable demonstrates the insert/improve/reset cycle a search
// performs once per solve: record costs during the search, then reclaim
// the table for the next one without reallocating it.
func ExampleTable() {
	tb := visited.NewTable(256)
	pos := grid.NewPosition(4, 4)

	ok, _ := tb.InsertOrUpdate(0, pos, 7)
	fmt.Println(ok, tb.Get(0, pos))

	ok, _ = tb.InsertOrUpdate(0, pos, 3)
	fmt.Println(ok, tb.Get(0, pos))

	tb.ResetForSearch()
	fmt.Println(tb.Get(0, pos) == grid.Infinity)

	// Output:
	// true 7
	// true 3
	// true
}
