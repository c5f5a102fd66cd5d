package data

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/banachtech/volfit/util"
)

// moneyness band and minimum liquidity for a snapshot row to enter the
// calibration surface
const (
	moneynessLo = 0.5
	moneynessHi = 2.0
	minOpenInt  = 1.0
)

// below this maturity the calendar and trading clocks diverge enough to
// move short-dated implied vols
const shortDatedCutoff = 0.25

// expiryYears converts an expiration date to a pricing maturity. Short-dated
// expiries count NYSE business days on the 252 convention; further out the
// ACT/365 fraction is used.
func expiryYears(asOf, expiry time.Time) float64 {
	t := util.YearFraction(asOf, expiry)
	if t <= 0 || t >= shortDatedCutoff {
		return t
	}
	if bt, err := util.TradingYearFraction(asOf, expiry); err == nil && bt > 0 {
		return bt
	}
	return t
}

// FetchSurface pulls the full option-chain snapshot for one underlying
// from polygon and distills it into a calibration surface: out-of-the-money
// contracts only, moneyness inside the band, expiries converted to ACT/365
// year fractions. Rows without a vendor implied vol keep their mid price so
// FillImpliedVols can invert them later.
func FetchSurface(ticker string, asOf time.Time) (Surface, error) {
	url := fmt.Sprintf("https://api.polygon.io/v3/snapshot/options/%v?limit=250", ticker)
	page, err := getPolygon(url, ChainPage{})
	if err != nil {
		return Surface{}, err
	}
	next := page.Next
	for next != "" {
		extra, err := getPolygon(next, ChainPage{})
		if err != nil {
			return Surface{}, err
		}
		page.Results = append(page.Results, extra.Results...)
		next = extra.Next
	}
	if len(page.Results) == 0 {
		return Surface{}, fmt.Errorf("data: empty option chain for %v", ticker)
	}

	forward := page.Results[0].UnderlyingAsset.Price
	if forward <= 0 {
		return Surface{}, fmt.Errorf("data: no underlying price in %v snapshot", ticker)
	}

	s := Surface{Ticker: ticker, Forward: forward}
	bar := progressBar(len(page.Results))
	bar.Describe(fmt.Sprintf("Filtering %v\t", ticker))
	for _, r := range page.Results {
		bar.Add(1)
		k := r.Details.StrikePrice / forward
		isCall := r.Details.ContractType == "call"
		// keep the out-of-the-money side only, where quotes carry the
		// volatility information
		if (isCall && k < 1) || (!isCall && k > 1) {
			continue
		}
		if k < moneynessLo || k > moneynessHi || r.OpenInterest < minOpenInt {
			continue
		}
		expiry, err := time.Parse(util.Layout, r.Details.ExpirationDate)
		if err != nil {
			log.Warn().Str("contract", r.Details.Ticker).Err(err).Msg("skipping contract with bad expiry")
			continue
		}
		t := expiryYears(asOf, expiry)
		if t <= 1.0/365.0 {
			continue
		}
		s.Quotes = append(s.Quotes, MarketQuote{
			Strike:   r.Details.StrikePrice,
			Maturity: t,
			Type:     r.Details.ContractType,
			IVol:     r.ImpliedVolatility,
			Bid:      r.LastQuote.Bid,
			Ask:      r.LastQuote.Ask,
			Price:    r.Day.Close,
		})
	}
	if len(s.Quotes) == 0 {
		return s, fmt.Errorf("data: no usable quotes for %v after filtering", ticker)
	}
	SortByMoneyness(s.Quotes)
	log.Info().Str("ticker", ticker).Int("quotes", len(s.Quotes)).Float64("forward", forward).Msg("surface built")
	return s, nil
}

// ListContracts returns the active option contracts for an underlying from
// the polygon reference endpoint, following pagination.
func ListContracts(ticker string) ([]Contract, error) {
	url := fmt.Sprintf("https://api.polygon.io/v3/reference/options/contracts?underlying_ticker=%v&limit=1000", ticker)
	page, err := getPolygon(url, ContractsPage{})
	if err != nil {
		return nil, err
	}
	next := page.Next
	for next != "" {
		extra, err := getPolygon(next, ContractsPage{})
		if err != nil {
			return nil, err
		}
		page.Results = append(page.Results, extra.Results...)
		next = extra.Next
	}
	return page.Results, nil
}

// FetchSurfaces runs FetchSurface for each ticker concurrently, keeping the
// successes and reporting failures per ticker.
func FetchSurfaces(tickers []string, asOf time.Time) (map[string]Surface, error) {
	type fetched struct {
		ticker string
		s      Surface
		err    error
	}
	ch := make(chan fetched, len(tickers))
	for _, t := range tickers {
		go func(t string) {
			s, err := FetchSurface(t, asOf)
			ch <- fetched{ticker: t, s: s, err: err}
		}(t)
	}
	out := map[string]Surface{}
	var firstErr error
	for range tickers {
		f := <-ch
		if f.err != nil {
			log.Error().Str("ticker", f.ticker).Err(f.err).Msg("surface fetch failed")
			if firstErr == nil {
				firstErr = f.err
			}
			continue
		}
		out[f.ticker] = f.s
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("data: all surface fetches failed: %w", firstErr)
	}
	return out, nil
}
