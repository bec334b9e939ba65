package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gpdata/dsp/spectrum"
)

func ExampleLombScargle() {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 0, -1, 0}
	p, _ := spectrum.LombScargle(x, y, []float64{math.Pi / 2}, false)
	fmt.Printf("%.3f\n", p[0])
	// Output:
	// 1.000
}

func ExampleGrid() {
	grid, _ := spectrum.Grid(1, 4)
	fmt.Println(grid)
	// Output:
	// [0.25 0.5 0.75 1]
}

func ExampleMinGap() {
	fmt.Println(spectrum.MinGap([]float64{0, 0.5, 0.5, 2, 2.25}))
	// Output:
	// 0.25
}
