package core

// EstimatorConfig defines common spectral estimator settings.
//
// Components is the number of peaks (Q) returned per input dimension.
// GridPoints is the number of frequencies evaluated; zero selects the
// estimator's own default. MaxEvaluations bounds the likelihood evaluations
// of trained estimators; zero selects their default. FastPeriodogram
// selects the FFT-based periodogram where an estimator has one.
type EstimatorConfig struct {
	Components      int
	GridPoints      int
	MaxEvaluations  int
	FastPeriodogram bool
}

// EstimatorOption mutates an EstimatorConfig.
type EstimatorOption func(*EstimatorConfig)

// DefaultEstimatorConfig returns a single-component config with the grid size
// left to the estimator.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		Components: 1,
	}
}

// WithComponents sets the number of peaks to estimate.
func WithComponents(q int) EstimatorOption {
	return func(cfg *EstimatorConfig) {
		cfg.Components = q
	}
}

// WithGridPoints sets the number of frequency grid points.
func WithGridPoints(n int) EstimatorOption {
	return func(cfg *EstimatorConfig) {
		cfg.GridPoints = n
	}
}

// WithMaxEvaluations bounds the likelihood evaluations spent training an
// estimator.
func WithMaxEvaluations(n int) EstimatorOption {
	return func(cfg *EstimatorConfig) {
		cfg.MaxEvaluations = n
	}
}

// WithFastPeriodogram selects the FFT-based periodogram, which is faster on
// large grids and approximate to about 1e-3 of the peak power.
func WithFastPeriodogram(fast bool) EstimatorOption {
	return func(cfg *EstimatorConfig) {
		cfg.FastPeriodogram = fast
	}
}

// ApplyEstimatorOptions applies zero or more options to the default config.
// A zero GridPoints after all options is replaced by defaultPoints.
func ApplyEstimatorOptions(defaultPoints int, opts ...EstimatorOption) EstimatorConfig {
	cfg := DefaultEstimatorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.GridPoints == 0 {
		cfg.GridPoints = defaultPoints
	}
	return cfg
}
