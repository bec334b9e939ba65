package spectral

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/dsp/bnse"
	"github.com/cwbudde/algo-gpdata/dsp/core"
)

// DefaultBNSEPoints is the default BNSE frequency grid size.
const DefaultBNSEPoints = 8000

// Engine is a Bayesian non-parametric spectral estimator for one series.
// Methods are called in declaration order.
type Engine interface {
	SetFreqSpace(maxFreq float64, n int) error
	Train() error
	ComputeMoments() error
	// FreqPeaks returns peak amplitudes, positions in cycles and widths,
	// strongest first.
	FreqPeaks() (amplitudes, positions, variances []float64)
}

// EngineFactory creates an Engine for the samples (x, y).
type EngineFactory func(x, y []float64) (Engine, error)

// DefaultEngine creates the reference engine from package bnse.
func DefaultEngine(x, y []float64) (Engine, error) {
	return bnse.New(x, y)
}

// BNSE estimates peaks with the reference BNSE engine.
//
// Training evaluates the likelihood up to 400 times by default, each time
// factoring an N x N covariance matrix for N training samples, so the cost
// grows as N^3. Use core.WithMaxEvaluations to bound it, or aggregate long
// series first.
func BNSE(src Source, opts ...core.EstimatorOption) (*Estimate, error) {
	cfg := core.ApplyEstimatorOptions(DefaultBNSEPoints, opts...)
	factory := DefaultEngine
	if cfg.MaxEvaluations > 0 {
		factory = func(x, y []float64) (Engine, error) {
			return bnse.New(x, y, bnse.WithMaxEvaluations(cfg.MaxEvaluations))
		}
	}
	return BNSEWithEngine(src, factory, opts...)
}

// BNSEWithEngine estimates peaks with engines created by factory. Each
// dimension is trained on a [0, nyquist] grid; its peaks are padded to Q.
func BNSEWithEngine(src Source, factory EngineFactory, opts ...core.EstimatorOption) (*Estimate, error) {
	cfg, err := config(DefaultBNSEPoints, opts)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: nil engine factory", ErrConfig)
	}

	dims := src.InputDims()
	est := newEstimate(dims, cfg.Components)
	nyquist := Nyquist(src)
	for i := 0; i < dims; i++ {
		if nyquist[i] == 0 {
			klog.V(2).InfoS("bnse skipped dimension without spacing", "dim", i)
			continue
		}
		x, y := src.TrainingSpectrumData(i)

		engine, err := factory(x, y)
		if err != nil {
			return nil, fmt.Errorf("bnse dim %d: %w", i, err)
		}
		if err := engine.SetFreqSpace(nyquist[i], cfg.GridPoints); err != nil {
			return nil, fmt.Errorf("bnse dim %d: %w", i, err)
		}
		if err := engine.Train(); err != nil {
			return nil, fmt.Errorf("bnse dim %d: %w", i, err)
		}
		if err := engine.ComputeMoments(); err != nil {
			return nil, fmt.Errorf("bnse dim %d: %w", i, err)
		}

		amplitudes, positions, variances := engine.FreqPeaks()
		klog.V(2).InfoS("bnse peaks", "dim", i, "nyquist", nyquist[i], "found", len(positions), "components", cfg.Components)
		if len(positions) == 0 {
			continue
		}
		est.setPadded(i, amplitudes, positions, variances)
	}
	return est, nil
}
