package usecase

import (
	"fmt"
	"math"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
)

// Lookback durations in seconds.
const (
	HourSeconds  = 60 * 60
	DaySeconds   = 60 * 60 * 24
	Day7Seconds  = 60 * 60 * 24 * 7
	Day30Seconds = 60 * 60 * 24 * 30
)

// LookbackResolver converts lookback durations into sample-count offsets
// for a given sampling profile. Day30Correction is subtracted from the
// 30-day offset: the fetch window is requested slightly short of 30 days
// (endpoint resolution-tier compensation), so the naive offset would reach
// past the earliest fetched sample.
type LookbackResolver struct {
	Day30Correction int
}

// NewLookbackResolver returns a resolver with the given 30-day offset
// correction (5 for the stock chart endpoint).
func NewLookbackResolver(day30Correction int) *LookbackResolver {
	return &LookbackResolver{Day30Correction: day30Correction}
}

// Resolve computes the four offsets, each round(duration / interval).
func (r *LookbackResolver) Resolve(profile domain.SamplingProfile) domain.LookbackOffsets {
	return domain.LookbackOffsets{
		Hour:  roundOffset(HourSeconds, profile.Interval),
		Day:   roundOffset(DaySeconds, profile.Interval),
		Day7:  roundOffset(Day7Seconds, profile.Interval),
		Day30: roundOffset(Day30Seconds, profile.Interval) - r.Day30Correction,
	}
}

func roundOffset(duration float64, interval float64) int {
	return int(math.Round(duration / interval))
}

// SampleIndex maps an offset to a concrete series index. The reference
// point is sampleCount-2, the newest reliable sample. An index before the
// start of the series fails with ErrOutOfRange for that window only. A
// negative offset (a correction larger than the rounded sample count, as
// happens on very sparse series) would index past the reference point and
// off the end of the series, so it is out of range too.
func SampleIndex(sampleCount, offset int) (int, error) {
	idx := sampleCount - 2 - offset
	if offset < 0 || idx < 0 {
		return 0, fmt.Errorf("%w: index %d with %d samples", domain.ErrOutOfRange, idx, sampleCount)
	}
	return idx, nil
}
