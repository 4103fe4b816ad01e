package domain

// AssetSnapshot is one row of the ranking endpoint: identity plus the
// current market figures quoted in BTC and USD. Built once per run and
// read-only afterwards.
type AssetSnapshot struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	PriceBTC     float64 `json:"price_btc"`
	PriceUSD     float64 `json:"price_usd"`
	Volume24hUSD float64 `json:"24h_volume_usd"`
	MarketCapUSD float64 `json:"market_cap_usd"`
}

// Window identifies one of the four fixed lookback windows.
type Window int

const (
	WindowHour Window = iota
	WindowDay
	Window7Day
	Window30Day
)

func (w Window) String() string {
	switch w {
	case WindowHour:
		return "1h"
	case WindowDay:
		return "1d"
	case Window7Day:
		return "7d"
	case Window30Day:
		return "30d"
	}
	return "unknown"
}

// Windows lists the lookback windows in reporting order.
var Windows = []Window{WindowHour, WindowDay, Window7Day, Window30Day}

// WindowStats holds the historical prices and change ratios for one
// lookback window. Ratio = current price / historical price. A window for
// which the history could not be resolved has Available=false; its other
// fields must then be ignored. Unavailable is a distinct state, never zero.
type WindowStats struct {
	Available    bool
	HistPriceBTC float64
	HistPriceUSD float64
	ChangeBTC    float64
	ChangeUSD    float64
}

// AssetSummary is the per-asset record of the summary table: current
// figures joined with the resolved lookback windows. Fields are filled
// during building and never mutated afterwards.
type AssetSummary struct {
	ID           string
	Name         string
	Symbol       string
	PriceBTC     float64
	PriceUSD     float64
	Volume24hUSD float64
	MarketCapUSD float64

	Stats [4]WindowStats
}

// Window returns the stats for the given lookback window.
func (s *AssetSummary) Window(w Window) WindowStats {
	return s.Stats[w]
}

// Change returns the BTC change ratio for the given window and whether it
// is available.
func (s *AssetSummary) Change(w Window) (float64, bool) {
	st := s.Stats[w]
	return st.ChangeBTC, st.Available
}
