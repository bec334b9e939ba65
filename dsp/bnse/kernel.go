package bnse

import "math"

// Hyperparameters of the spectral-mixture kernel and the observation noise.
type Hyperparameters struct {
	Sigma float64 // kernel standard deviation
	Gamma float64 // inverse squared length scale factor
	Theta float64 // kernel center frequency (cycles per unit)
	Noise float64 // observation noise standard deviation
}

func (h Hyperparameters) kernel(tau float64) float64 {
	return h.Sigma * h.Sigma * math.Exp(-h.Gamma*tau*tau) * math.Cos(2*math.Pi*h.Theta*tau)
}

// crossCovariance returns the covariance between the real and imaginary
// parts of the windowed spectrum at frequency xi and the process at time s.
func (h Hyperparameters) crossCovariance(xi, s, alpha float64) (re, im float64) {
	a := alpha + h.Gamma
	c := alpha * h.Gamma / a
	pref := 0.5 * h.Sigma * h.Sigma * math.Sqrt(math.Pi/a) * math.Exp(-c*s*s)

	nu1 := xi - h.Theta
	nu2 := xi + h.Theta
	a1 := math.Exp(-math.Pi * math.Pi * nu1 * nu1 / a)
	a2 := math.Exp(-math.Pi * math.Pi * nu2 * nu2 / a)
	sin1, cos1 := math.Sincos(2 * math.Pi * (nu1*h.Gamma*s/a + h.Theta*s))
	sin2, cos2 := math.Sincos(2 * math.Pi * (nu2*h.Gamma*s/a - h.Theta*s))

	re = pref * (a1*cos1 + a2*cos2)
	im = -pref * (a1*sin1 + a2*sin2)
	return re, im
}

// pack maps hyperparameters to the unconstrained optimization space.
func (h Hyperparameters) pack() []float64 {
	return []float64{math.Log(h.Sigma), math.Log(h.Gamma), h.Theta, math.Log(h.Noise)}
}

func unpack(p []float64) Hyperparameters {
	return Hyperparameters{
		Sigma: math.Exp(p[0]),
		Gamma: math.Exp(p[1]),
		Theta: math.Abs(p[2]),
		Noise: math.Exp(p[3]),
	}
}
