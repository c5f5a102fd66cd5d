package data

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/banachtech/volfit/bs"
)

// MarketQuote is one observed option quote. Quotes are value objects:
// ingested once, then passed around read-only.
type MarketQuote struct {
	Strike   float64 `json:"strike"`
	Maturity float64 `json:"maturity"`
	Type     string  `json:"type"` // "call" or "put"
	IVol     float64 `json:"ivol"`
	Price    float64 `json:"price,omitempty"`
	Bid      float64 `json:"bid,omitempty"`
	Ask      float64 `json:"ask,omitempty"`
	Weight   float64 `json:"weight,omitempty"` // 0 means unit weight
}

func (q MarketQuote) IsCall() bool { return q.Type != "put" }

// Validate rejects quotes that cannot enter a calibration.
func (q MarketQuote) Validate() error {
	switch {
	case q.Strike <= 0:
		return fmt.Errorf("quote: strike must be positive, got %v", q.Strike)
	case q.Maturity <= 0:
		return fmt.Errorf("quote: maturity must be positive, got %v", q.Maturity)
	case q.Type != "call" && q.Type != "put":
		return fmt.Errorf("quote: type must be call or put, got %q", q.Type)
	case q.IVol < 0:
		return fmt.Errorf("quote: implied vol must be non-negative, got %v", q.IVol)
	}
	return nil
}

// Surface is an ordered quote collection for one underlying at one
// observation time.
type Surface struct {
	Ticker  string        `json:"ticker"`
	Forward float64       `json:"forward"`
	Quotes  []MarketQuote `json:"quotes"`
}

// LoadSurface reads a quote surface from a JSON file.
func LoadSurface(filename string) (Surface, error) {
	s, err := Open(filename, Surface{})
	if err != nil {
		return s, err
	}
	if s.Forward <= 0 {
		return s, fmt.Errorf("surface %s: forward must be positive, got %v", filename, s.Forward)
	}
	for _, q := range s.Quotes {
		if err := q.Validate(); err != nil {
			return s, fmt.Errorf("surface %s: %w", filename, err)
		}
	}
	return s, nil
}

// SaveSurface writes the surface as indented JSON, mirroring LoadSurface.
func SaveSurface(s Surface, filename string) error {
	out, err := json.MarshalIndent(s, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, out, 0644)
}

// LoadTickers reads a JSON array of underlying tickers, the input format of
// the batch fetcher.
func LoadTickers(filename string) ([]string, error) {
	return Open(filename, []string{})
}

// FillImpliedVols converts price quotes into implied-vol quotes. Quotes
// that already carry an implied vol are kept as-is. A price outside the
// arbitrage-free band is a data error and surfaces as bs.NoArbitrageError
// rather than being skipped.
func FillImpliedVols(s Surface) (Surface, error) {
	out := s
	out.Quotes = make([]MarketQuote, len(s.Quotes))
	copy(out.Quotes, s.Quotes)
	for i, q := range out.Quotes {
		if q.IVol > 0 {
			continue
		}
		target := q.Price
		if target == 0 && q.Bid > 0 && q.Ask > 0 {
			target = 0.5 * (q.Bid + q.Ask)
		}
		iv, err := bs.ImpliedVol(target, s.Forward, q.Strike, q.Maturity, q.IsCall())
		if err != nil {
			return out, fmt.Errorf("quote strike=%v t=%v: %w", q.Strike, q.Maturity, err)
		}
		out.Quotes[i].IVol = iv
	}
	return out, nil
}

// SortByMoneyness orders quotes by maturity then strike, the layout the
// interpolation and reporting layers expect.
func SortByMoneyness(quotes []MarketQuote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].Maturity != quotes[j].Maturity {
			return quotes[i].Maturity < quotes[j].Maturity
		}
		return quotes[i].Strike < quotes[j].Strike
	})
}
