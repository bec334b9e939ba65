// Package peaks locates and measures local maxima in sampled spectra.
//
// The detection rules follow the conventions of common scientific peak
// finders so results are comparable with reference tooling:
//
//   - [Find] reports strict local maxima; a flat top (plateau) is reported
//     once, at its middle sample (rounded down).
//   - [Prominences] measures how far each peak rises above the higher of the
//     two lowest points reachable on either side before a higher sample.
//   - [Widths] measures the width at a relative height of the prominence,
//     with linear interpolation between samples.
//
// [Detect] combines the three and orders peaks by height, strongest first.
package peaks
