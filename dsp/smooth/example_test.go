package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-localortho/dsp/grid"
	"github.com/cwbudde/algo-localortho/dsp/smooth"
)

func ExampleSmooth() {
	g := grid.New(7)
	g.Set(9, 3)

	out, _ := smooth.Smooth(g, []int{3})
	fmt.Printf("%.0f\n", out.Data)

	// Output:
	// [0 1 2 3 2 1 0]
}
