package model

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHestonValidate(t *testing.T) {
	testCases := []struct {
		name  string
		m     Heston
		param string
	}{
		{"OK", NewHeston(0.04, 1.5, 0.04, 0.5, -0.6), ""},
		{"NEGATIVE_V0", NewHeston(-0.04, 1.5, 0.04, 0.5, -0.6), "v0"},
		{"ZERO_KAPPA", NewHeston(0.04, 0, 0.04, 0.5, -0.6), "kappa"},
		{"NEGATIVE_THETA", NewHeston(0.04, 1.5, -0.04, 0.5, -0.6), "theta"},
		{"ZERO_NU", NewHeston(0.04, 1.5, 0.04, 0, -0.6), "nu"},
		{"RHO_OUT_OF_RANGE", NewHeston(0.04, 1.5, 0.04, 0.5, -1), "rho"},
		{"NAN_V0", NewHeston(math.NaN(), 1.5, 0.04, 0.5, -0.6), "v0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if tc.param == "" {
				require.NoError(t, err)
				return
			}
			var ip *InvalidParameterError
			require.ErrorAs(t, err, &ip)
			require.Equal(t, tc.param, ip.Param)
			require.Equal(t, "heston", ip.Model)
		})
	}
}

func TestHestonMartingale(t *testing.T) {
	// phi(-i) = 1 is the normalization every maturity must satisfy
	models := []Model{
		NewHeston(0.04, 2.0, 0.04, 0.3, -0.7),
		NewHeston(0.04, 1.5, 0.04, 0.5, -0.6),
		NewHeston(0.04, 0.5, 0.09, 0.9, -0.9),
	}
	for _, m := range models {
		for _, maturity := range []float64{0.05, 0.5, 2.0, 10.0} {
			phi := m.CharacteristicFunction(complex(0, -1), maturity)
			require.InDelta(t, 1.0, real(phi), 1e-10)
			require.InDelta(t, 0.0, imag(phi), 1e-10)
		}
	}
}

func TestHestonConjugateSymmetry(t *testing.T) {
	m := NewHeston(0.04, 1.5, 0.04, 0.5, -0.6)
	for _, u := range []float64{0.5, 3, 17, 80} {
		phi := m.CharacteristicFunction(complex(u, 0), 1.3)
		phiNeg := m.CharacteristicFunction(complex(-u, 0), 1.3)
		require.InDelta(t, real(phi), real(phiNeg), 1e-12)
		require.InDelta(t, imag(phi), -imag(phiNeg), 1e-12)
	}
}

// High vol-of-vol and long maturities are where a naive complex log picks
// the wrong sheet and the characteristic function jumps.
func TestHestonLongMaturityStability(t *testing.T) {
	m := NewHeston(0.04, 0.5, 0.09, 0.9, -0.9)
	for _, maturity := range []float64{5.0, 15.0, 30.0} {
		prev := m.CharacteristicFunction(complex(0.1, 0), maturity)
		for u := 0.2; u <= 200; u += 0.1 {
			phi := m.CharacteristicFunction(complex(u, 0), maturity)
			require.False(t, cmplx.IsNaN(phi) || cmplx.IsInf(phi), "u=%v t=%v", u, maturity)
			require.LessOrEqual(t, cmplx.Abs(phi), 1.0+1e-9, "u=%v t=%v", u, maturity)
			// a wrong branch shows as an order-one discontinuity; the decay
			// near u=0 at long maturity is steep but stays well below this
			require.Less(t, cmplx.Abs(phi-prev), 0.25, "jump at u=%v t=%v", u, maturity)
			prev = phi
		}
	}
}

// The steepest region of the long-maturity characteristic function is the
// decay near u=0. At fine resolution it must be smooth, so any larger step
// seen at coarse sampling is slope, not a branch artifact.
func TestHestonLongMaturitySteepDecayIsSmooth(t *testing.T) {
	m := NewHeston(0.04, 0.5, 0.09, 0.9, -0.9)
	prev := m.CharacteristicFunction(complex(0.1, 0), 30.0)
	for u := 0.101; u <= 0.3; u += 0.001 {
		phi := m.CharacteristicFunction(complex(u, 0), 30.0)
		require.Less(t, cmplx.Abs(phi-prev), 0.01, "u=%v", u)
		prev = phi
	}
}

func TestFellerRatio(t *testing.T) {
	require.InDelta(t, 2*1.5*0.04/(0.5*0.5), NewHeston(0.04, 1.5, 0.04, 0.5, -0.6).FellerRatio(), 1e-15)
	// a violated Feller condition is diagnosed, not rejected
	m := NewHeston(0.04, 0.5, 0.09, 0.9, -0.9)
	require.Less(t, m.FellerRatio(), 1.0)
	require.NoError(t, m.Validate())
}

func TestHestonGetSetRoundTrip(t *testing.T) {
	m := NewHeston(0.04, 1.5, 0.04, 0.5, -0.6)
	p := m.Get()
	require.Equal(t, []float64{0.04, 1.5, 0.04, 0.5, -0.6}, p)
	m2 := m.Set([]float64{0.09, 2.0, 0.05, 0.3, -0.4})
	require.Equal(t, []float64{0.09, 2.0, 0.05, 0.3, -0.4}, m2.Get())
	// Set returns a copy, the receiver is unchanged
	require.Equal(t, p, m.Get())
}

func TestEvaluateChecks(t *testing.T) {
	m := NewHeston(0.04, 1.5, 0.04, 0.5, -0.6)

	_, err := Evaluate(m, complex(1, 0), 0)
	require.Error(t, err)

	_, err = Evaluate(m, complex(1, 0), -1)
	require.Error(t, err)

	bad := NewHeston(-0.04, 1.5, 0.04, 0.5, -0.6)
	_, err = Evaluate(bad, complex(1, 0), 1)
	var ip *InvalidParameterError
	require.ErrorAs(t, err, &ip)

	phi, err := Evaluate(m, complex(1, 0), 1)
	require.NoError(t, err)
	require.Less(t, cmplx.Abs(phi), 1.0)

	us := []complex128{complex(0.5, 0), complex(1, 0), complex(2, 0)}
	phis, err := EvaluateVec(m, us, 1)
	require.NoError(t, err)
	require.Len(t, phis, len(us))
	for i, u := range us {
		require.Equal(t, m.CharacteristicFunction(u, 1), phis[i])
	}
}
