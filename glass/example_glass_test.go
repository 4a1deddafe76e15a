package glass_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/glass/figures"
	"github.com/plus3/glass/glass"
)

// Example plays the gravity loop an external driver runs: move down until
// the piece rests, freeze it, clear rows and spawn the next piece.
func Example() {
	g := glass.New(6, 4, rand.New(rand.NewPCG(1, 2)))

	g.Spawn(figures.Line, 0)
	g.Relocate(glass.Left)
	for g.Relocate(glass.Down) {
	}
	g.Freeze()
	fmt.Print(g)

	g.Spawn(figures.Square, 0)
	g.Relocate(glass.Right)
	g.Relocate(glass.Right)
	g.Drop()
	g.Freeze()
	fmt.Println("cleared:", g.ClearFilledRows())
	fmt.Print(g)

	// Output:
	// ......
	// ......
	// ......
	// ####..
	// cleared: 1
	// ......
	// ......
	// ......
	// ....##
}
