package model

import (
	"math"
	"math/cmplx"
)

// Bates combines Heston stochastic volatility with Merton-style lognormal
// jumps. The characteristic function factorizes into the Heston part and a
// compensated jump part, both affine.
type Bates struct {
	Heston
	Lambda float64
	MuJ    float64
	DeltaJ float64
}

func NewBates(v0, kappa, theta, nu, rho, lambda, muJ, deltaJ float64) Bates {
	return Bates{
		Heston: NewHeston(v0, kappa, theta, nu, rho),
		Lambda: lambda,
		MuJ:    muJ,
		DeltaJ: deltaJ,
	}
}

func (b Bates) Name() string { return "bates" }

func (b Bates) Validate() error {
	if err := b.Heston.Validate(); err != nil {
		e := err.(*InvalidParameterError)
		e.Model = b.Name()
		return e
	}
	switch {
	case b.Lambda < 0 || math.IsNaN(b.Lambda):
		return &InvalidParameterError{Model: b.Name(), Param: "lambda", Value: b.Lambda, Reason: "must be non-negative"}
	case b.DeltaJ < 0 || math.IsNaN(b.DeltaJ):
		return &InvalidParameterError{Model: b.Name(), Param: "deltaJ", Value: b.DeltaJ, Reason: "must be non-negative"}
	case math.IsNaN(b.MuJ) || math.IsInf(b.MuJ, 0):
		return &InvalidParameterError{Model: b.Name(), Param: "muJ", Value: b.MuJ, Reason: "must be finite"}
	}
	return nil
}

func (b Bates) CharacteristicFunction(u complex128, t float64) complex128 {
	kbar := math.Exp(b.MuJ+0.5*b.DeltaJ*b.DeltaJ) - 1
	iu := complex(0, 1) * u
	jump := complex(b.Lambda, 0) * (cmplx.Exp(iu*complex(b.MuJ, 0)-complex(0.5*b.DeltaJ*b.DeltaJ, 0)*u*u) - 1 - iu*complex(kbar, 0))
	return b.Heston.CharacteristicFunction(u, t) * cmplx.Exp(complex(t, 0)*jump)
}

func (b Bates) Get() []float64 {
	return []float64{b.V0, b.Kappa, b.Theta, b.Nu, b.Rho, b.Lambda, b.MuJ, b.DeltaJ}
}

func (b Bates) Set(p []float64) Model {
	b.V0, b.Kappa, b.Theta, b.Nu, b.Rho = p[0], p[1], p[2], p[3], p[4]
	b.Lambda, b.MuJ, b.DeltaJ = p[5], p[6], p[7]
	return b
}

func (b Bates) Bounds() (lo, hi []float64) {
	hlo, hhi := b.Heston.Bounds()
	lo = append(hlo, 0, -1.0, 0)
	hi = append(hhi, 5.0, 1.0, 1.0)
	return lo, hi
}
