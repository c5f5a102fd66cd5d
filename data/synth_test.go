package data

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banachtech/volfit/fourier"
	"github.com/banachtech/volfit/model"
)

func TestSyntheticSurface(t *testing.T) {
	p, err := fourier.NewPricer(fourier.DefaultConfig())
	require.NoError(t, err)
	m := model.NewHeston(0.04, 1.5, 0.04, 0.5, -0.6)

	maturities := []float64{0.5, 1.0}
	strikes := []float64{80, 90, 100, 110, 120}
	s, err := SyntheticSurface(m, p, 100.0, maturities, strikes)
	require.NoError(t, err)
	require.Len(t, s.Quotes, len(maturities)*len(strikes))

	for _, q := range s.Quotes {
		require.NoError(t, q.Validate())
		require.Greater(t, q.IVol, 0.0)
		// out-of-the-money convention
		if q.Strike >= s.Forward {
			require.True(t, q.IsCall())
		} else {
			require.False(t, q.IsCall())
		}
	}

	// negative spot-vol correlation produces a downward skew
	var low, high float64
	for _, q := range s.Quotes {
		if q.Maturity == 1.0 && q.Strike == 80 {
			low = q.IVol
		}
		if q.Maturity == 1.0 && q.Strike == 120 {
			high = q.IVol
		}
	}
	require.Greater(t, low, high)
}

func TestPerturbDeterministic(t *testing.T) {
	p, err := fourier.NewPricer(fourier.DefaultConfig())
	require.NoError(t, err)
	m := model.NewHeston(0.04, 1.5, 0.04, 0.5, -0.6)
	s, err := SyntheticSurface(m, p, 100.0, []float64{1.0}, []float64{90, 100, 110})
	require.NoError(t, err)

	a := Perturb(s, 0.01, 42)
	b := Perturb(s, 0.01, 42)
	c := Perturb(s, 0.01, 43)
	require.Equal(t, a.Quotes, b.Quotes)
	require.NotEqual(t, a.Quotes, c.Quotes)

	for i := range a.Quotes {
		require.InDelta(t, s.Quotes[i].IVol, a.Quotes[i].IVol, 0.005)
		// original is untouched
		require.NotEqual(t, 0.0, s.Quotes[i].Price)
	}
}
