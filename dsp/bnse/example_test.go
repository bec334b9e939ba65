package bnse_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-gpdata/dsp/bnse"
)

func ExampleEstimator() {
	x := make([]float64, 100)
	y := make([]float64, 100)
	for i := range x {
		x[i] = 0.2*float64(i) + 0.05*math.Sin(float64(i))
		y[i] = math.Sin(2 * math.Pi * 0.5 * x[i])
	}

	est, err := bnse.New(x, y, bnse.WithHyperparameters(bnse.Hyperparameters{
		Sigma: 1, Gamma: 2, Theta: 0.5, Noise: 0.05,
	}))
	if err != nil {
		panic(err)
	}
	if err := est.SetFreqSpace(2, 401); err != nil {
		panic(err)
	}
	if err := est.ComputeMoments(); err != nil {
		panic(err)
	}

	_, positions, _ := est.FreqPeaks()
	fmt.Printf("dominant frequency: %.1f\n", positions[0])
	// Output:
	// dominant frequency: 0.5
}
