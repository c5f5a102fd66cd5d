package data

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/banachtech/volfit/bs"
	"github.com/banachtech/volfit/fourier"
	"github.com/banachtech/volfit/model"
)

// SyntheticSurface prices every (maturity, strike) pair under the model and
// converts to implied vols, producing a noise-free surface the calibrator
// should recover exactly. Out-of-the-money type per strike, as on a real
// chain.
func SyntheticSurface(m model.Model, p *fourier.Pricer, forward float64, maturities, strikes []float64) (Surface, error) {
	s := Surface{Ticker: "SYNTH", Forward: forward}
	for _, t := range maturities {
		calls, err := p.Price(m, forward, t, strikes, true)
		if err != nil {
			return s, fmt.Errorf("data: synthetic surface at t=%v: %w", t, err)
		}
		for i, k := range strikes {
			isCall := k >= forward
			price := calls[i]
			typ := "call"
			if !isCall {
				price = calls[i] - forward + k
				typ = "put"
			}
			iv, err := bs.ImpliedVol(price, forward, k, t, isCall)
			if err != nil {
				return s, fmt.Errorf("data: synthetic surface at t=%v k=%v: %w", t, k, err)
			}
			s.Quotes = append(s.Quotes, MarketQuote{Strike: k, Maturity: t, Type: typ, IVol: iv, Price: price})
		}
	}
	return s, nil
}

// Perturb adds centred uniform noise of the given width to every implied
// vol, for stress-testing calibration on imperfect data.
func Perturb(s Surface, width float64, seed uint64) Surface {
	rng := rand.New(rand.NewSource(seed))
	out := s
	out.Quotes = make([]MarketQuote, len(s.Quotes))
	copy(out.Quotes, s.Quotes)
	for i := range out.Quotes {
		out.Quotes[i].IVol += width * (rng.Float64() - 0.5)
		out.Quotes[i].Price = 0
	}
	return out
}
