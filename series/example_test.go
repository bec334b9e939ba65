package series_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gpdata/series"
)

func ExampleSeries_Apply() {
	x := []float64{0, 1, 2, 3}
	y := series.New([]float64{1, 3, 5, 7})

	detrend := series.NewDetrend()
	if err := detrend.Fit([][]float64{x}, y.Transformed()); err != nil {
		panic(err)
	}
	if err := y.Apply(detrend, [][]float64{x}); err != nil {
		panic(err)
	}

	fmt.Printf("trend: %.1f + %.1f*x\n", detrend.Coef[0], detrend.Coef[1])
	flat := true
	for _, r := range y.Transformed() {
		flat = flat && math.Abs(r) < 1e-9
	}
	fmt.Println("flat residual:", flat)
	fmt.Printf("raw: %.0f\n", y.Values())
	// Output:
	// trend: 1.0 + 2.0*x
	// flat residual: true
	// raw: [1 3 5 7]
}
