package calib

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/banachtech/volfit/data"
	"github.com/banachtech/volfit/model"
)

// CalibrateMultistart runs Calibrate from the model's own start plus
// restarts-1 random starts drawn uniformly inside the box, and keeps the
// run with the lowest RMSE. Runs fan out over goroutines; selection is
// deterministic for a fixed seed because ties break on start index.
func (e *Engine) CalibrateMultistart(m model.Model, quotes []data.MarketQuote, forward float64, lo, hi []float64, restarts int, seed uint64) (Result, error) {
	if restarts < 1 {
		return Result{Status: StatusInitialized}, fmt.Errorf("calib: restarts must be at least 1, got %d", restarts)
	}
	if lo == nil || hi == nil {
		lo, hi = m.Bounds()
	}
	start := m.Get()
	if err := checkBounds(start, lo, hi); err != nil {
		return Result{Status: StatusInitialized}, err
	}

	starts := make([][]float64, restarts)
	starts[0] = start
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < restarts; i++ {
		p := make([]float64, len(start))
		for j := range p {
			// stay strictly inside the open box
			f := 0.02 + 0.96*rng.Float64()
			p[j] = lo[j] + f*(hi[j]-lo[j])
		}
		starts[i] = p
	}

	type run struct {
		idx int
		res Result
		err error
	}
	ch := make(chan run, restarts)
	for i := range starts {
		go func(i int, p []float64) {
			res, err := e.Calibrate(m.Set(p), quotes, forward, lo, hi)
			ch <- run{idx: i, res: res, err: err}
		}(i, starts[i])
	}

	runs := make([]run, restarts)
	for i := 0; i < restarts; i++ {
		r := <-ch
		runs[r.idx] = r
	}

	best := -1
	for i, r := range runs {
		if r.err != nil || r.res.Status == StatusFailed {
			continue
		}
		if best < 0 || r.res.RMSE < runs[best].res.RMSE {
			best = i
		}
	}
	if best >= 0 {
		return runs[best].res, nil
	}

	// every start failed: report the first run's outcome so the caller sees
	// the last valid parameters and the underlying pricing error
	var errs []error
	for _, r := range runs {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return runs[0].res, fmt.Errorf("calib: all %d starts failed: %w", restarts, errors.Join(errs...))
}
