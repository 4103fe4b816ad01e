package coinmarketcap

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
)

// rankingEntry is one row of the v1 ticker response. Every numeric field
// arrives as a JSON string, and any of them may be null.
type rankingEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	PriceBTC     *string `json:"price_btc"`
	PriceUSD     *string `json:"price_usd"`
	Volume24hUSD *string `json:"24h_volume_usd"`
	MarketCapUSD *string `json:"market_cap_usd"`
}

// FetchRanking pulls the top market-cap assets, limit 0 for all. Rows
// missing either quote price are dropped here: an asset we cannot price
// in both units has no place in the summary table.
func (c *Client) FetchRanking(ctx context.Context, limit int) ([]domain.AssetSnapshot, error) {
	url := fmt.Sprintf("%s/v1/ticker/?limit=%d", c.rankingBaseURL, limit)
	body, err := c.getWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}

	var entries []rankingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parse ranking response: %w", err)
	}

	snapshots := make([]domain.AssetSnapshot, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		priceBTC, okBTC := parsePrice(e.PriceBTC)
		priceUSD, okUSD := parsePrice(e.PriceUSD)
		if !okBTC || !okUSD {
			dropped++
			c.log.Debug("dropping ranking row without both quote prices",
				zap.String("asset", e.ID))
			continue
		}
		snapshots = append(snapshots, domain.AssetSnapshot{
			ID:           e.ID,
			Name:         e.Name,
			Symbol:       e.Symbol,
			PriceBTC:     priceBTC,
			PriceUSD:     priceUSD,
			Volume24hUSD: parseOptional(e.Volume24hUSD),
			MarketCapUSD: parseOptional(e.MarketCapUSD),
		})
	}
	if dropped > 0 {
		c.log.Info("dropped incomplete ranking rows", zap.Int("count", dropped))
	}
	return snapshots, nil
}

func parsePrice(s *string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseOptional(s *string) float64 {
	v, _ := parsePrice(s)
	return v
}
