package model

import (
	"math"
	"math/cmplx"
)

// Merton jump diffusion: Gaussian log returns plus compound Poisson jumps
// with lognormal sizes. The Levy exponent is affine, so the characteristic
// function is a single closed-form exponential.
type Merton struct {
	Sigma  float64 // diffusive volatility
	Lambda float64 // jump intensity per year
	MuJ    float64 // mean log jump size
	DeltaJ float64 // log jump size volatility
}

func NewMerton(sigma, lambda, muJ, deltaJ float64) Merton {
	return Merton{Sigma: sigma, Lambda: lambda, MuJ: muJ, DeltaJ: deltaJ}
}

func (m Merton) Name() string { return "merton" }

func (m Merton) Validate() error {
	switch {
	case m.Sigma <= 0 || math.IsNaN(m.Sigma):
		return &InvalidParameterError{Model: m.Name(), Param: "sigma", Value: m.Sigma, Reason: "must be strictly positive"}
	case m.Lambda < 0 || math.IsNaN(m.Lambda):
		return &InvalidParameterError{Model: m.Name(), Param: "lambda", Value: m.Lambda, Reason: "must be non-negative"}
	case m.DeltaJ < 0 || math.IsNaN(m.DeltaJ):
		return &InvalidParameterError{Model: m.Name(), Param: "deltaJ", Value: m.DeltaJ, Reason: "must be non-negative"}
	case math.IsNaN(m.MuJ) || math.IsInf(m.MuJ, 0):
		return &InvalidParameterError{Model: m.Name(), Param: "muJ", Value: m.MuJ, Reason: "must be finite"}
	}
	return nil
}

// CharacteristicFunction of log(F_T/F_0). The drift carries the jump
// compensator so that phi(-i) = 1.
func (m Merton) CharacteristicFunction(u complex128, t float64) complex128 {
	s2 := m.Sigma * m.Sigma
	kbar := math.Exp(m.MuJ+0.5*m.DeltaJ*m.DeltaJ) - 1
	iu := complex(0, 1) * u
	drift := iu * complex(-0.5*s2-m.Lambda*kbar, 0)
	diff := complex(-0.5*s2, 0) * u * u
	jump := complex(m.Lambda, 0) * (cmplx.Exp(iu*complex(m.MuJ, 0)-complex(0.5*m.DeltaJ*m.DeltaJ, 0)*u*u) - 1)
	return cmplx.Exp(complex(t, 0) * (drift + diff + jump))
}

func (m Merton) Get() []float64 {
	return []float64{m.Sigma, m.Lambda, m.MuJ, m.DeltaJ}
}

func (m Merton) Set(p []float64) Model {
	m.Sigma, m.Lambda, m.MuJ, m.DeltaJ = p[0], p[1], p[2], p[3]
	return m
}

func (m Merton) Bounds() (lo, hi []float64) {
	lo = []float64{1e-3, 0, -1.0, 0}
	hi = []float64{2.0, 5.0, 1.0, 1.0}
	return lo, hi
}
