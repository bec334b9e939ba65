// Package observation stores irregularly sampled observations for spectral
// mixture modeling and prepares them for a downstream model.
//
// A Data value holds one series per input dimension, one output series, a
// training mask and prediction buffers. Observations can be transformed
// reversibly (see package series), masked to simulate sensor failure,
// filtered and aggregated on an interval grid. The spectral estimators of
// package spectral run on the masked, transformed training subset.
//
// Time axes are stored as Unix seconds, so numeric steps and duration steps
// (see package duration) both resolve to float64 axis units.
//
// Data is not safe for concurrent use. Random removal draws from the
// generator set with WithRand, which makes runs reproducible.
package observation
