// Package spectral estimates the dominant spectral peaks of observation data
// as (amplitude, mean frequency, width) triples, one row per input dimension.
//
// Three estimators are provided:
//
//   - BNSE runs Bayesian non-parametric spectral estimation through an Engine
//     on a [0, nyquist] grid.
//   - LombScargle detects peaks of a Lomb-Scargle periodogram on an angular
//     (0, 2*pi*nyquist] grid and converts their half-maximum widths to
//     Gaussian standard deviations.
//   - GaussianMixture fits a Q-component mixture to a normalized periodogram
//     treated as a weighted sample, seeded at its highest peaks.
//
// Peak-based estimators share one padding policy: when fewer than Q peaks
// exist they are repeated cyclically, strongest first, and a dimension
// without peaks keeps an all-zero row. Mean frequencies are always reported
// in cycles per axis unit.
//
// Data is read through the Source interface, which observation.Data
// implements with its masked, transformed training values.
package spectral
