package model

import (
	"math"
	"math/cmplx"
)

// Model is an affine stochastic model of the log forward return
// X_T = log(F_T/F_0). Implementations expose the characteristic function
// phi(u) = E[exp(iuX_T)], normalized so that phi(-i) = 1, and the parameter
// plumbing needed by the calibration engine.
type Model interface {
	// CharacteristicFunction evaluates phi at a single complex argument.
	// Callers are expected to validate parameters and maturity first; use
	// Evaluate or EvaluateVec for the checked entry points.
	CharacteristicFunction(u complex128, t float64) complex128
	// Validate checks parameter admissibility.
	Validate() error
	// Get returns the raw parameter vector.
	Get() []float64
	// Set creates a model for the given raw parameter vector.
	Set(p []float64) Model
	// Bounds returns the default admissible box for calibration.
	Bounds() (lo, hi []float64)
	Name() string
}

// Evaluate is the checked scalar characteristic function call. It fails
// with InvalidParameterError on inadmissible parameters or a non-positive
// maturity, and with NumericalInstabilityError on non-finite output.
func Evaluate(m Model, u complex128, t float64) (complex128, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if t <= 0 {
		return 0, &InvalidParameterError{Model: m.Name(), Param: "maturity", Value: t, Reason: "must be strictly positive"}
	}
	v := m.CharacteristicFunction(u, t)
	if !isFinite(v) {
		return 0, &NumericalInstabilityError{Model: m.Name(), Maturity: t, U: u, Detail: "non-finite characteristic function"}
	}
	return v, nil
}

// EvaluateVec evaluates the characteristic function on an ordered argument
// grid in one validated call. Output order matches the input order.
func EvaluateVec(m Model, us []complex128, t float64) ([]complex128, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if t <= 0 {
		return nil, &InvalidParameterError{Model: m.Name(), Param: "maturity", Value: t, Reason: "must be strictly positive"}
	}
	out := make([]complex128, len(us))
	for i, u := range us {
		v := m.CharacteristicFunction(u, t)
		if !isFinite(v) {
			return nil, &NumericalInstabilityError{Model: m.Name(), Maturity: t, U: u, Detail: "non-finite characteristic function"}
		}
		out[i] = v
	}
	return out, nil
}

func isFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v) &&
		!math.IsNaN(real(v)) && !math.IsNaN(imag(v))
}
