// Package spectrum provides spectral-domain utilities for unevenly sampled
// series.
//
// The package works directly on sample coordinates rather than on FFT bins:
// [LombScargle] evaluates a periodogram at arbitrary angular frequencies, and
// the grid helpers build the frequency axes used by the estimators in the
// spectral package. [LombScargleFast] computes the same periodogram on a
// uniform frequency grid with FFTs from algo-fft. Power and scaling helpers
// delegate to algo-vecmath so large grids stay on the SIMD fast path.
package spectrum
