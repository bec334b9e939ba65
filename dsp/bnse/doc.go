// Package bnse implements Bayesian non-parametric spectral estimation for
// unevenly sampled series.
//
// The observations are modeled as a Gaussian process with a single
// spectral-mixture kernel
//
//	k(tau) = sigma^2 * exp(-gamma*tau^2) * cos(2*pi*theta*tau)
//
// plus white observation noise. The local spectrum is the Fourier transform
// of the process under a Gaussian window exp(-alpha*t^2) centered on the
// observation span. Because that transform is linear in the process, its
// posterior mean has a closed form: a cross-covariance between spectrum and
// samples applied to the usual GP weights (K + noise*I)^-1 y.
//
// Training maximizes the marginal likelihood over the kernel and noise
// parameters with a derivative-free Nelder-Mead search. The power spectral
// density is the squared magnitude of the posterior mean spectrum, and its
// peaks are reported in cycles per axis unit.
package bnse
