// Package mixture fits one-dimensional Gaussian mixtures to weighted samples
// with expectation maximization.
//
// Samples carry non-negative weights, which lets a sampled density such as a
// periodogram be fit directly: the frequency grid is the sample set and the
// spectral power is the weight. Component means are seeded by the caller; the
// initial weights and variances come from assigning every sample to its
// nearest seed.
package mixture
