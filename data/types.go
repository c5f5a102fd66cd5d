package data

// Polygon option-chain snapshot payloads. Field sets follow the v3 REST
// responses; only what the surface builder reads is declared.

type ContractsPage struct {
	Results []Contract `json:"results"`
	Next    string     `json:"next_url"`
}

type Contract struct {
	ContractType   string  `json:"contract_type"`
	ExerciseStyle  string  `json:"exercise_style"`
	ExpirationDate string  `json:"expiration_date"`
	StrikePrice    float64 `json:"strike_price"`
	Ticker         string  `json:"ticker"`
}

type SnapshotDay struct {
	Close         float64 `json:"close"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previous_close"`
	Volume        int     `json:"volume"`
	Vwap          float64 `json:"vwap"`
}

type SnapshotQuote struct {
	Ask float64 `json:"ask"`
	Bid float64 `json:"bid"`
}

type SnapshotUnderlying struct {
	Price       float64 `json:"price"`
	Ticker      string  `json:"ticker"`
	LastUpdated int64   `json:"last_updated"`
}

type SnapshotResult struct {
	Day               SnapshotDay        `json:"day"`
	Details           Contract           `json:"details"`
	LastQuote         SnapshotQuote      `json:"last_quote"`
	ImpliedVolatility float64            `json:"implied_volatility"`
	OpenInterest      float64            `json:"open_interest"`
	UnderlyingAsset   SnapshotUnderlying `json:"underlying_asset"`
}

type ChainPage struct {
	Results []SnapshotResult `json:"results"`
	Next    string           `json:"next_url"`
}
