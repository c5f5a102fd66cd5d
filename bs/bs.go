// Package bs provides undiscounted Black-Scholes prices on the forward and
// the bracketed implied volatility inversion used to compare model prices
// with market quotes.
package bs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	maxIterations = 100
	priceTol      = 1e-12
	volLo         = 1e-9
	volHi         = 5.0
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NoArbitrageError reports an input price outside the model-free bounds, so
// no real volatility reproduces it.
type NoArbitrageError struct {
	Price    float64
	Forward  float64
	Strike   float64
	Maturity float64
	IsCall   bool
}

func (e *NoArbitrageError) Error() string {
	return fmt.Sprintf("bs: price %v outside arbitrage bounds for forward=%v strike=%v t=%v call=%v",
		e.Price, e.Forward, e.Strike, e.Maturity, e.IsCall)
}

// ConvergenceError reports a root-find that exhausted its iteration budget.
type ConvergenceError struct {
	Iterations int
	LastVol    float64
	LastDiff   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("bs: implied vol did not converge after %d iterations (vol=%v, residual=%v)",
		e.Iterations, e.LastVol, e.LastDiff)
}

// Price is the undiscounted Black-Scholes price on the forward.
func Price(forward, strike, t, sigma float64, isCall bool) float64 {
	if sigma <= 0 {
		if isCall {
			return math.Max(forward-strike, 0)
		}
		return math.Max(strike-forward, 0)
	}
	x := sigma * math.Sqrt(t)
	d1 := (math.Log(forward/strike) + 0.5*sigma*sigma*t) / x
	d2 := d1 - x
	if isCall {
		return forward*stdNormal.CDF(d1) - strike*stdNormal.CDF(d2)
	}
	return strike*stdNormal.CDF(-d2) - forward*stdNormal.CDF(-d1)
}

// Vega is the closed-form sensitivity to volatility, identical for calls
// and puts.
func Vega(forward, strike, t, sigma float64) float64 {
	x := sigma * math.Sqrt(t)
	d1 := (math.Log(forward/strike) + 0.5*sigma*sigma*t) / x
	return forward * stdNormal.Prob(d1) * math.Sqrt(t)
}

// ImpliedVol inverts the Black-Scholes formula by Newton iteration with a
// bisection safeguard inside a fixed bracket. Prices at intrinsic value
// return zero volatility; prices outside the arbitrage-free band fail with
// NoArbitrageError rather than being approximated.
func ImpliedVol(price, forward, strike, maturity float64, isCall bool) (float64, error) {
	if forward <= 0 || strike <= 0 || maturity <= 0 {
		return 0, fmt.Errorf("bs: forward, strike and maturity must be positive (got %v, %v, %v)", forward, strike, maturity)
	}
	intrinsic := math.Max(forward-strike, 0)
	upper := forward
	if !isCall {
		intrinsic = math.Max(strike-forward, 0)
		upper = strike
	}
	if price < intrinsic || price >= upper {
		return 0, &NoArbitrageError{Price: price, Forward: forward, Strike: strike, Maturity: maturity, IsCall: isCall}
	}
	if price == intrinsic {
		return 0, nil
	}

	lo, hi := volLo, volHi
	sigma := 0.5
	tol := priceTol * forward
	var diff float64
	for i := 0; i < maxIterations; i++ {
		diff = Price(forward, strike, maturity, sigma, isCall) - price
		if math.Abs(diff) < tol {
			return sigma, nil
		}
		if diff > 0 {
			hi = sigma
		} else {
			lo = sigma
		}
		v := Vega(forward, strike, maturity, sigma)
		next := sigma - diff/v
		// fall back to bisection when the Newton step leaves the bracket
		if v < 1e-14 || next <= lo || next >= hi || math.IsNaN(next) {
			next = 0.5 * (lo + hi)
		}
		sigma = next
	}
	return 0, &ConvergenceError{Iterations: maxIterations, LastVol: sigma, LastDiff: diff}
}
