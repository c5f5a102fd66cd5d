package model

import (
	"math"
	"math/cmplx"
)

// Heston stochastic volatility model:
//
//	dF/F = sqrt(v) dW1, dv = Kappa(Theta - v) dt + Nu sqrt(v) dW2,
//	d<W1,W2> = Rho dt.
//
// The Riccati system admits the closed-form solution used below, written in
// the stable "g-minus" form so the log argument stays away from the branch
// cut for realistic parameters; riccatiLog tracks the branch explicitly for
// the rest.
type Heston struct {
	V0    float64 // initial variance
	Kappa float64 // mean reversion speed of variance
	Theta float64 // long-run variance
	Nu    float64 // volatility of variance
	Rho   float64 // spot-variance correlation
}

// Constructor with the conventional notation.
func NewHeston(v0, kappa, theta, nu, rho float64) Heston {
	return Heston{V0: v0, Kappa: kappa, Theta: theta, Nu: nu, Rho: rho}
}

func (h Heston) Name() string { return "heston" }

func (h Heston) Validate() error {
	switch {
	case h.V0 <= 0 || math.IsNaN(h.V0):
		return &InvalidParameterError{Model: h.Name(), Param: "v0", Value: h.V0, Reason: "must be strictly positive"}
	case h.Kappa <= 0 || math.IsNaN(h.Kappa):
		return &InvalidParameterError{Model: h.Name(), Param: "kappa", Value: h.Kappa, Reason: "must be strictly positive"}
	case h.Theta <= 0 || math.IsNaN(h.Theta):
		return &InvalidParameterError{Model: h.Name(), Param: "theta", Value: h.Theta, Reason: "must be strictly positive"}
	case h.Nu <= 0 || math.IsNaN(h.Nu):
		return &InvalidParameterError{Model: h.Name(), Param: "nu", Value: h.Nu, Reason: "must be strictly positive"}
	case h.Rho <= -1 || h.Rho >= 1 || math.IsNaN(h.Rho):
		return &InvalidParameterError{Model: h.Name(), Param: "rho", Value: h.Rho, Reason: "must lie in (-1, 1)"}
	}
	return nil
}

// FellerRatio returns 2*Kappa*Theta/Nu^2. Values below 1 mean the variance
// process can touch zero; reported as a diagnostic, not enforced.
func (h Heston) FellerRatio() float64 {
	return 2 * h.Kappa * h.Theta / (h.Nu * h.Nu)
}

// CharacteristicFunction of log(F_T/F_0). phi(-i) = 1 by construction.
func (h Heston) CharacteristicFunction(u complex128, t float64) complex128 {
	psi1, psi2 := h.riccati(u, t)
	return cmplx.Exp(psi1 + psi2*complex(h.V0, 0))
}

// riccati solves the two Riccati coefficients at maturity t.
func (h Heston) riccati(u complex128, t float64) (complex128, complex128) {
	nu2 := h.Nu * h.Nu
	beta := complex(h.Kappa, 0) - complex(0, h.Nu*h.Rho)*u
	d := cmplx.Sqrt(complex(nu2, 0)*(u*u+complex(0, 1)*u) + beta*beta)
	g := (beta - d) / (beta + d)

	l := riccatiLog(g, d, t)
	psi1 := complex(h.Kappa*h.Theta/nu2, 0) * (complex(t, 0)*(beta-d) - 2*l)

	ed := cmplx.Exp(-d * complex(t, 0))
	psi2 := (1 - ed) * (beta - d) / ((1 - g*ed) * complex(nu2, 0))
	return psi1, psi2
}

func (h Heston) Get() []float64 {
	return []float64{h.V0, h.Kappa, h.Theta, h.Nu, h.Rho}
}

func (h Heston) Set(p []float64) Model {
	h.V0, h.Kappa, h.Theta, h.Nu, h.Rho = p[0], p[1], p[2], p[3], p[4]
	return h
}

// Default calibration box. The upper nu and lower kappa bounds keep trial
// points away from the deep Feller-violating corner.
func (h Heston) Bounds() (lo, hi []float64) {
	lo = []float64{1e-4, 1e-2, 1e-4, 1e-2, -0.99}
	hi = []float64{1.0, 20.0, 1.0, 3.0, 0.99}
	return lo, hi
}
