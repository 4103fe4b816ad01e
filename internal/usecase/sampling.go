package usecase

import (
	"fmt"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
)

// EstimateProfile infers the effective sampling interval of a fetched
// series. The chart source delivers the newest sample with a random delta
// to its predecessor (it is whatever the site had on hand), so the average
// spacing is taken over the first N-2 deltas only. Range still spans the
// whole series including the last sample, for reporting.
func EstimateProfile(series domain.TimeSeries) (domain.SamplingProfile, error) {
	n := series.Len()
	if n < 3 {
		return domain.SamplingProfile{}, fmt.Errorf("%w: %d samples", domain.ErrInsufficientData, n)
	}

	interval := float64(series[n-2].Timestamp-series[0].Timestamp) / float64(n-2)
	rng := float64(series[n-1].Timestamp - series[0].Timestamp)

	return domain.SamplingProfile{
		Interval:    interval,
		SampleCount: n,
		Range:       rng,
	}, nil
}
