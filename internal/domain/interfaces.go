package domain

import (
	"context"
	"time"
)

// RankingSource fetches the market-cap ranking snapshot. limit is the
// number of top assets wanted, 0 for all.
type RankingSource interface {
	FetchRanking(ctx context.Context, limit int) ([]AssetSnapshot, error)
}

// SeriesSource fetches the historical price series for one asset over
// [start, end]. Implementations apply their own retry policy; callers
// only see success or a terminal error.
type SeriesSource interface {
	FetchSeries(ctx context.Context, assetID string, start, end time.Time) (TimeSeries, error)
}
