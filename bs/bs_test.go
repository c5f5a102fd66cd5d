package bs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceLimits(t *testing.T) {
	// zero vol collapses to intrinsic
	require.Equal(t, 20.0, Price(100, 80, 1, 0, true))
	require.Equal(t, 0.0, Price(100, 120, 1, 0, true))
	require.Equal(t, 20.0, Price(100, 120, 1, 0, false))

	// price is increasing in vol and bounded by the forward
	prev := 0.0
	for _, sigma := range []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0} {
		p := Price(100, 100, 1, sigma, true)
		require.Greater(t, p, prev)
		require.Less(t, p, 100.0)
		prev = p
	}
}

func TestPutCallParity(t *testing.T) {
	for _, strike := range []float64{70, 100, 140} {
		call := Price(100, strike, 0.7, 0.3, true)
		put := Price(100, strike, 0.7, 0.3, false)
		require.InDelta(t, call-put, 100-strike, 1e-12)
	}
}

func TestVegaMatchesFiniteDifference(t *testing.T) {
	h := 1e-6
	for _, strike := range []float64{80, 100, 125} {
		fd := (Price(100, strike, 1.3, 0.25+h, true) - Price(100, strike, 1.3, 0.25-h, true)) / (2 * h)
		require.InDelta(t, fd, Vega(100, strike, 1.3, 0.25), 1e-5)
	}
}

func TestImpliedVolRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		strike  float64
		t       float64
		sigma   float64
		isCall  bool
	}{
		{"ATM", 100, 1.0, 0.2, true},
		{"OTM_CALL", 130, 0.5, 0.25, true},
		{"ITM_CALL", 70, 2.0, 0.35, true},
		{"OTM_PUT", 75, 0.25, 0.4, false},
		{"LOW_VOL", 100, 1.0, 0.01, true},
		{"HIGH_VOL", 100, 1.0, 2.5, true},
		{"SHORT_DATE_WING", 120, 0.05, 0.6, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price := Price(100, tc.strike, tc.t, tc.sigma, tc.isCall)
			iv, err := ImpliedVol(price, 100, tc.strike, tc.t, tc.isCall)
			require.NoError(t, err)
			require.InDelta(t, tc.sigma, iv, 1e-8)
		})
	}
}

func TestImpliedVolNoArbitrage(t *testing.T) {
	// below intrinsic
	_, err := ImpliedVol(19.0, 100, 80, 1, true)
	var na *NoArbitrageError
	require.ErrorAs(t, err, &na)
	require.Equal(t, 19.0, na.Price)

	// at or above the forward bound
	_, err = ImpliedVol(100.0, 100, 80, 1, true)
	require.ErrorAs(t, err, &na)

	// put above its strike bound
	_, err = ImpliedVol(85.0, 100, 80, 1, false)
	require.ErrorAs(t, err, &na)

	// negative price
	_, err = ImpliedVol(-1.0, 100, 120, 1, true)
	require.ErrorAs(t, err, &na)
}

func TestImpliedVolAtIntrinsic(t *testing.T) {
	iv, err := ImpliedVol(20.0, 100, 80, 1, true)
	require.NoError(t, err)
	require.Equal(t, 0.0, iv)

	iv, err = ImpliedVol(0.0, 100, 120, 1, true)
	require.NoError(t, err)
	require.Equal(t, 0.0, iv)
}

func TestImpliedVolBadInputs(t *testing.T) {
	_, err := ImpliedVol(5, -100, 100, 1, true)
	require.Error(t, err)
	_, err = ImpliedVol(5, 100, 0, 1, true)
	require.Error(t, err)
	_, err = ImpliedVol(5, 100, 100, 0, true)
	require.Error(t, err)
}

// Deep wings have near-zero vega, where plain Newton diverges and the
// bracket has to carry the iteration.
func TestImpliedVolDeepWingBisection(t *testing.T) {
	price := Price(100, 200, 0.1, 0.8, true)
	require.Greater(t, price, 0.0)
	iv, err := ImpliedVol(price, 100, 200, 0.1, true)
	require.NoError(t, err)
	require.InDelta(t, 0.8, iv, 1e-6)
}

func TestImpliedVolMonotone(t *testing.T) {
	prev := 0.0
	for f := 0.05; f < 0.95; f += 0.1 {
		price := f * 100.0
		if price <= 0 {
			continue
		}
		iv, err := ImpliedVol(price, 100, 100, 1, true)
		require.NoError(t, err)
		require.Greater(t, iv, prev)
		prev = iv
	}
}
