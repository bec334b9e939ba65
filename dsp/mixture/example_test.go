package mixture_test

import (
	"fmt"

	"github.com/cwbudde/algo-gpdata/dsp/mixture"
)

func ExampleFit() {
	x := []float64{0.9, 1.0, 1.1, 4.9, 5.0, 5.1}
	m, _ := mixture.Fit(x, nil, []float64{0, 6})
	fmt.Printf("means=%.1f %.1f weights=%.1f %.1f\n", m.Means[0], m.Means[1], m.Weights[0], m.Weights[1])
	// Output:
	// means=1.0 5.0 weights=0.5 0.5
}
