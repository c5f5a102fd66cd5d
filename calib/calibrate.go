// Package calib fits affine model parameters to a market implied-vol
// surface by bounded nonlinear least squares over the Fourier pricer.
package calib

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/banachtech/volfit/bs"
	"github.com/banachtech/volfit/data"
	"github.com/banachtech/volfit/fourier"
	"github.com/banachtech/volfit/model"
)

// Status is the terminal state of a calibration run.
type Status int

const (
	StatusInitialized Status = iota
	StatusIterating
	StatusConverged
	StatusMaxIterations
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max_iterations_exceeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the read-only outcome of one calibration.
type Result struct {
	Model      model.Model
	Residuals  []float64 // model iv minus market iv, in quote order
	Status     Status
	Iterations int
	RMSE       float64
	Rejected   int        // trial points rejected with a penalty
	Covariance *mat.Dense // parameter covariance estimate, nil if singular
}

// Engine drives the optimizer. Zero values fall back to the defaults set
// by New.
type Engine struct {
	Pricer        *fourier.Pricer
	MaxIterations int
	Tol           float64 // convergence tolerance on the objective
	Penalty       float64 // objective value assigned to a rejected trial
	PenaltyBudget int     // consecutive rejections before the run is declared failed
}

func New(p *fourier.Pricer) *Engine {
	return &Engine{
		Pricer:        p,
		MaxIterations: 3000,
		Tol:           1e-12,
		Penalty:       1e6,
		PenaltyBudget: 50,
	}
}

// strike group: quotes sharing a maturity and option type are priced in
// one vectorised transform call
type group struct {
	maturity float64
	isCall   bool
	strikes  []float64
	idx      []int
}

func groupQuotes(quotes []data.MarketQuote) []group {
	var groups []group
	for i, q := range quotes {
		found := false
		for gi := range groups {
			if groups[gi].maturity == q.Maturity && groups[gi].isCall == q.IsCall() {
				groups[gi].strikes = append(groups[gi].strikes, q.Strike)
				groups[gi].idx = append(groups[gi].idx, i)
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, group{maturity: q.Maturity, isCall: q.IsCall(), strikes: []float64{q.Strike}, idx: []int{i}})
		}
	}
	return groups
}

// residuals evaluates model-iv minus market-iv per quote. Any typed
// pricing or inversion failure is returned for the caller to convert into
// a penalty.
func (e *Engine) residuals(m model.Model, quotes []data.MarketQuote, groups []group, forward float64, out []float64) error {
	for _, g := range groups {
		prices, err := e.Pricer.Price(m, forward, g.maturity, g.strikes, g.isCall)
		if err != nil {
			return err
		}
		for j, i := range g.idx {
			iv, err := bs.ImpliedVol(prices[j], forward, quotes[i].Strike, quotes[i].Maturity, g.isCall)
			if err != nil {
				return err
			}
			out[i] = iv - quotes[i].IVol
		}
	}
	return nil
}

func weights(quotes []data.MarketQuote) []float64 {
	w := make([]float64, len(quotes))
	for i, q := range quotes {
		w[i] = q.Weight
		if w[i] <= 0 {
			w[i] = 1
		}
	}
	return w
}

// rejectable reports whether an error is a pricing-stage failure that the
// engine absorbs as a penalized trial instead of crashing the search.
func rejectable(err error) bool {
	var ip *model.InvalidParameterError
	var ni *model.NumericalInstabilityError
	var ie *fourier.IntegrationError
	var na *bs.NoArbitrageError
	var ce *bs.ConvergenceError
	return errors.As(err, &ip) || errors.As(err, &ni) || errors.As(err, &ie) ||
		errors.As(err, &na) || errors.As(err, &ce)
}

// Calibrate fits the model to the quotes, starting from the parameters the
// model currently carries. Bounds are mandatory: nil lo/hi fall back to the
// model's default box, and every optimizer trial stays inside the box by
// construction of the logistic reparametrization.
func (e *Engine) Calibrate(m model.Model, quotes []data.MarketQuote, forward float64, lo, hi []float64) (Result, error) {
	res := Result{Status: StatusInitialized}
	if len(quotes) == 0 {
		return res, errors.New("calib: no quotes")
	}
	if forward <= 0 {
		return res, fmt.Errorf("calib: forward must be positive, got %v", forward)
	}
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return res, err
		}
	}
	if lo == nil || hi == nil {
		lo, hi = m.Bounds()
	}
	start := m.Get()
	if err := checkBounds(start, lo, hi); err != nil {
		return res, err
	}

	groups := groupQuotes(quotes)
	w := weights(quotes)
	wsum := 0.0
	for _, v := range w {
		wsum += v
	}

	n := len(quotes)
	rejectStreak, rejected := 0, 0
	budgetHit := false
	var fatalErr error
	lastValid := append([]float64(nil), start...)

	objective := func(y []float64) float64 {
		p := toBox(y, lo, hi)
		trial := m.Set(p)
		resid := make([]float64, n)
		if err := e.residuals(trial, quotes, groups, forward, resid); err != nil {
			if !rejectable(err) {
				// not a bad trial point; abort via the penalty path
				if fatalErr == nil {
					fatalErr = err
				}
				budgetHit = true
				return math.Inf(1)
			}
			rejected++
			rejectStreak++
			if rejectStreak > e.PenaltyBudget {
				budgetHit = true
			}
			return e.Penalty * float64(1+rejectStreak)
		}
		rejectStreak = 0
		copy(lastValid, p)
		loss := 0.0
		for i, r := range resid {
			loss += w[i] * r * r
		}
		return loss / wsum
	}

	res.Status = StatusIterating
	settings := &optimize.Settings{
		MajorIterations: e.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   e.Tol,
			Relative:   e.Tol,
			Iterations: 100,
		},
	}
	opt, err := optimize.Minimize(optimize.Problem{Func: objective}, toUnconstrained(start, lo, hi), settings, &optimize.NelderMead{})
	if err != nil && opt == nil {
		res.Status = StatusFailed
		return res, fmt.Errorf("calib: optimizer failed: %w", err)
	}
	res.Iterations = opt.Stats.MajorIterations

	fitted := toBox(opt.X, lo, hi)
	if budgetHit || opt.F >= e.Penalty {
		// report the last parameter set that priced cleanly
		res.Status = StatusFailed
		res.Model = m.Set(lastValid)
		if fatalErr != nil {
			return res, fmt.Errorf("calib: objective evaluation failed: %w", fatalErr)
		}
		return res, fmt.Errorf("calib: %d consecutive trial points rejected, last objective %v", rejectStreak, opt.F)
	}

	final := m.Set(fitted)
	resid := make([]float64, n)
	if err := e.residuals(final, quotes, groups, forward, resid); err != nil {
		res.Status = StatusFailed
		res.Model = m.Set(lastValid)
		return res, fmt.Errorf("calib: final parameter set failed to price: %w", err)
	}

	res.Model = final
	res.Residuals = resid
	sq := make([]float64, n)
	for i, r := range resid {
		sq[i] = r * r
	}
	res.RMSE = math.Sqrt(stat.Mean(sq, w))
	res.Rejected = rejected
	if opt.Status == optimize.IterationLimit {
		res.Status = StatusMaxIterations
	} else {
		res.Status = StatusConverged
	}
	res.Covariance = e.covariance(m, fitted, quotes, groups, forward, resid, lo, hi)
	return res, nil
}

func checkBounds(p, lo, hi []float64) error {
	if len(lo) != len(p) || len(hi) != len(p) {
		return fmt.Errorf("calib: bounds length %d/%d does not match parameter count %d", len(lo), len(hi), len(p))
	}
	for i := range p {
		if !(lo[i] < hi[i]) {
			return fmt.Errorf("calib: bound %d is empty: [%v, %v]", i, lo[i], hi[i])
		}
		if p[i] <= lo[i] || p[i] >= hi[i] {
			return fmt.Errorf("calib: start parameter %d=%v outside open box (%v, %v)", i, p[i], lo[i], hi[i])
		}
	}
	return nil
}

// logistic reparametrization mapping the open box to R^n, generalizing the
// log/atanh transforms used per-parameter elsewhere in the codebase
func toUnconstrained(p, lo, hi []float64) []float64 {
	y := make([]float64, len(p))
	for i := range p {
		y[i] = math.Log((p[i] - lo[i]) / (hi[i] - p[i]))
	}
	return y
}

func toBox(y, lo, hi []float64) []float64 {
	p := make([]float64, len(y))
	for i := range y {
		p[i] = lo[i] + (hi[i]-lo[i])/(1+math.Exp(-y[i]))
	}
	return p
}

// covariance estimates the parameter covariance from a central-difference
// Jacobian of the residual vector at the optimum. Returns nil when J'J is
// singular or there are fewer quotes than parameters.
func (e *Engine) covariance(m model.Model, p []float64, quotes []data.MarketQuote, groups []group, forward float64, resid, lo, hi []float64) *mat.Dense {
	n, np := len(quotes), len(p)
	if n <= np {
		return nil
	}
	jac := mat.NewDense(n, np, nil)
	plus := make([]float64, n)
	minus := make([]float64, n)
	for j := 0; j < np; j++ {
		h := 1e-5 * (hi[j] - lo[j])
		pj := append([]float64(nil), p...)
		pj[j] = p[j] + h
		if err := e.residuals(m.Set(pj), quotes, groups, forward, plus); err != nil {
			return nil
		}
		pj[j] = p[j] - h
		if err := e.residuals(m.Set(pj), quotes, groups, forward, minus); err != nil {
			return nil
		}
		for i := 0; i < n; i++ {
			jac.Set(i, j, (plus[i]-minus[i])/(2*h))
		}
	}
	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)
	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil
	}
	rss := 0.0
	for _, r := range resid {
		rss += r * r
	}
	sigma2 := rss / float64(n-np)
	inv.Scale(sigma2, &inv)
	return &inv
}
