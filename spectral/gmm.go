package spectral

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/dsp/mixture"
	"github.com/cwbudde/algo-gpdata/dsp/peaks"
)

// DefaultGMMPoints is the default periodogram grid size of GaussianMixture.
const DefaultGMMPoints = 50000

const (
	gmmMaxIterations  = 500
	gmmTolerance      = 1e-5
	gmmRegularization = 1e-6
)

// GaussianMixture fits a Q-component Gaussian mixture to the normalized
// periodogram of each dimension, using the grid frequencies as samples and
// the periodogram as their weights.
//
// The periodogram grid spans (0, nyquist] and is evaluated as angular
// frequency. Component means are seeded at the highest peaks; missing seeds
// are filled with evenly spaced grid frequencies. The reported amplitude is
// weight/sqrt(2*pi*variance), the mean is converted to cycles and the
// variance is reported as fitted.
func GaussianMixture(src Source, opts ...core.EstimatorOption) (*Estimate, error) {
	cfg, err := config(DefaultGMMPoints, opts)
	if err != nil {
		return nil, err
	}
	q := cfg.Components

	dims := src.InputDims()
	est := newEstimate(dims, q)
	nyquist := Nyquist(src)
	for i := 0; i < dims; i++ {
		if nyquist[i] == 0 {
			klog.V(2).InfoS("gmm skipped dimension without spacing", "dim", i)
			continue
		}
		x, y := src.TrainingSpectrumData(i)

		freqs, psd, err := periodogram(x, y, nyquist[i], cfg, true)
		if err != nil {
			return nil, fmt.Errorf("gmm dim %d: %w", i, err)
		}

		idx := peaks.Find(psd)
		peaks.SortByHeight(psd, idx)
		seeds := seedMeans(freqs, idx, q)
		klog.V(2).InfoS("gmm seeds", "dim", i, "peaks", len(idx), "components", q)

		model, err := mixture.Fit(freqs, psd, seeds,
			mixture.WithMaxIterations(gmmMaxIterations),
			mixture.WithTolerance(gmmTolerance),
			mixture.WithRegularization(gmmRegularization),
		)
		if err != nil {
			klog.V(2).InfoS("gmm fit skipped", "dim", i, "err", err)
			continue
		}
		for k := 0; k < q; k++ {
			est.Variance[i][k] = model.Variances[k]
			est.Mean[i][k] = model.Means[k] / (2 * math.Pi)
			est.Amplitude[i][k] = model.Weights[k] / math.Sqrt(2*math.Pi*model.Variances[k])
		}
	}
	return est, nil
}

// seedMeans returns q initial means: the frequencies of the first q peaks in
// idx, followed by evenly spaced grid frequencies not already taken.
func seedMeans(freqs []float64, idx []int, q int) []float64 {
	seeds := make([]float64, 0, q)
	used := make(map[int]bool, q)
	for _, p := range idx {
		if len(seeds) == q {
			return seeds
		}
		seeds = append(seeds, freqs[p])
		used[p] = true
	}

	missing := q - len(seeds)
	for k := 1; len(seeds) < q; k++ {
		j := k * len(freqs) / (missing + 1)
		if j >= len(freqs) {
			j = len(freqs) - 1
		}
		for used[j] && j < len(freqs)-1 {
			j++
		}
		if used[j] {
			for j > 0 && used[j] {
				j--
			}
		}
		seeds = append(seeds, freqs[j])
		used[j] = true
	}
	return seeds
}
