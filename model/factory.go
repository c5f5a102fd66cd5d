package model

import "fmt"

// New returns a model by name at a generic equity starting point, the same
// defaults the calibration engine perturbs for its restarts.
func New(name string) (Model, error) {
	switch name {
	case "heston":
		return NewHeston(0.04, 1.5, 0.04, 0.5, -0.6), nil
	case "merton":
		return NewMerton(0.2, 0.3, -0.1, 0.15), nil
	case "bates":
		return NewBates(0.04, 1.5, 0.04, 0.5, -0.6, 0.3, -0.1, 0.15), nil
	}
	return nil, fmt.Errorf("model: unknown model %q", name)
}

// FromParams returns a model by name carrying the given parameter vector.
func FromParams(name string, p []float64) (Model, error) {
	m, err := New(name)
	if err != nil {
		return nil, err
	}
	if len(p) != len(m.Get()) {
		return nil, fmt.Errorf("model: %s takes %d parameters, got %d", name, len(m.Get()), len(p))
	}
	m = m.Set(p)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
