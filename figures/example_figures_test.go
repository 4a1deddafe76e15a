package figures_test

import (
	"fmt"

	"github.com/plus3/glass/figures"
)

// ExampleRepr_Rotate shows a Line turning about its pivot and coming back
// after four quarter turns.
func ExampleRepr_Rotate() {
	line := figures.New(figures.Line)
	fmt.Println(line.Blocks)

	r := line
	for i := 0; i < 4; i++ {
		r = r.Rotate()
		fmt.Println(r.Blocks)
	}

	// Output:
	// [{0 2} {1 2} {2 2} {3 2}]
	// [{2 1} {2 2} {2 3} {2 4}]
	// [{3 3} {2 3} {1 3} {0 3}]
	// [{1 4} {1 3} {1 2} {1 1}]
	// [{0 2} {1 2} {2 2} {3 2}]
}
