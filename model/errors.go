package model

import "fmt"

// InvalidParameterError reports a model parameter outside its admissible
// domain. Evaluation never clamps silently; callers decide how to recover.
type InvalidParameterError struct {
	Model  string
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %s=%v %s", e.Model, e.Param, e.Value, e.Reason)
}

// NumericalInstabilityError reports a non-finite characteristic function
// value. It carries enough context to reproduce the failing evaluation.
type NumericalInstabilityError struct {
	Model    string
	Maturity float64
	U        complex128
	Detail   string
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("%s: unstable evaluation at t=%v u=%v: %s", e.Model, e.Maturity, e.U, e.Detail)
}
