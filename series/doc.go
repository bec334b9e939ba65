// Package series holds one axis of observations together with an ordered
// chain of reversible transforms.
//
// A Series keeps its raw values untouched and caches the result of passing
// them through every applied Transformer in order. Transformers are fitted
// once, usually on the training subset of a data set, and then applied to
// the whole series. Backward undoes the chain, which is how predictions made
// in transformed space are mapped back to original units.
//
// Transform inputs are passed as per-dimension columns: x[d][i] is the i-th
// coordinate along input dimension d, aligned with y[i].
package series
