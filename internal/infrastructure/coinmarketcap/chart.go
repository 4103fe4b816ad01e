package coinmarketcap

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
)

// FetchSeries pulls the historical chart for one asset over [start, end].
// The endpoint takes millisecond timestamps in the path and answers with
// parallel [timestamp_ms, value] arrays per column. Only price_btc and
// price_usd are read; the payload sometimes carries extra columns for
// derivative coins, which is why the columns are extracted by name rather
// than decoded wholesale.
func (c *Client) FetchSeries(ctx context.Context, assetID string, start, end time.Time) (domain.TimeSeries, error) {
	url := fmt.Sprintf("%s/currencies/%s/%d/%d/",
		c.chartBaseURL, assetID, start.Unix()*1000, end.Unix()*1000)
	body, err := c.getWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseChart(body, assetID)
}

func parseChart(body []byte, assetID string) (domain.TimeSeries, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parse chart for %s: invalid JSON", assetID)
	}
	btc := gjson.GetBytes(body, "price_btc").Array()
	usd := gjson.GetBytes(body, "price_usd").Array()

	if len(btc) == 0 || len(usd) == 0 {
		return nil, fmt.Errorf("parse chart for %s: missing price columns", assetID)
	}
	// Some coins come back with columns of different lengths; indexes
	// would no longer line up, so the whole series is rejected.
	if len(btc) != len(usd) {
		return nil, fmt.Errorf("parse chart for %s: column length mismatch (%d btc, %d usd)",
			assetID, len(btc), len(usd))
	}

	series := make(domain.TimeSeries, 0, len(btc))
	for i := range btc {
		bp := btc[i].Array()
		up := usd[i].Array()
		if len(bp) != 2 || len(up) != 2 {
			return nil, fmt.Errorf("parse chart for %s: malformed sample at %d", assetID, i)
		}
		series = append(series, domain.Sample{
			Timestamp: int64(bp[0].Float()) / 1000,
			PriceBTC:  bp[1].Float(),
			PriceUSD:  up[1].Float(),
		})
	}
	return series, nil
}
