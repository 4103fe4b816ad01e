package usecase

import (
	"go.uber.org/zap"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
)

// SummaryBuilder joins one ranking snapshot with its fetched series into
// an AssetSummary. Window resolution failures are field-scoped: a window
// that cannot be read is marked unavailable and the remaining windows are
// still processed. Only a series too short to profile fails the whole
// asset.
type SummaryBuilder struct {
	resolver *LookbackResolver
	log      *zap.Logger
}

func NewSummaryBuilder(resolver *LookbackResolver, log *zap.Logger) *SummaryBuilder {
	return &SummaryBuilder{resolver: resolver, log: log}
}

// Build constructs the summary record for one asset. The current prices
// come from the series, index N-2 (the newest reliable sample), not from
// the ranking snapshot: both quote units must come from the same sample.
func (b *SummaryBuilder) Build(snap domain.AssetSnapshot, series domain.TimeSeries) (*domain.AssetSummary, error) {
	profile, err := EstimateProfile(series)
	if err != nil {
		return nil, err
	}
	offsets := b.resolver.Resolve(profile)

	current := series[profile.SampleCount-2]
	summary := &domain.AssetSummary{
		ID:           snap.ID,
		Name:         snap.Name,
		Symbol:       snap.Symbol,
		PriceBTC:     current.PriceBTC,
		PriceUSD:     current.PriceUSD,
		Volume24hUSD: snap.Volume24hUSD,
		MarketCapUSD: snap.MarketCapUSD,
	}

	for _, w := range domain.Windows {
		stats, err := resolveWindow(series, profile.SampleCount, offsets.Offset(w), current)
		if err != nil {
			b.log.Debug("lookback window unavailable",
				zap.String("asset", snap.ID),
				zap.Stringer("window", w),
				zap.Error(err))
			continue
		}
		summary.Stats[w] = stats
	}

	return summary, nil
}

func resolveWindow(series domain.TimeSeries, sampleCount, offset int, current domain.Sample) (domain.WindowStats, error) {
	idx, err := SampleIndex(sampleCount, offset)
	if err != nil {
		return domain.WindowStats{}, err
	}
	hist := series[idx]
	// A zero historical price would make the ratio degenerate; treat it
	// the same as missing history.
	if hist.PriceBTC <= 0 || hist.PriceUSD <= 0 {
		return domain.WindowStats{}, domain.ErrOutOfRange
	}
	return domain.WindowStats{
		Available:    true,
		HistPriceBTC: hist.PriceBTC,
		HistPriceUSD: hist.PriceUSD,
		ChangeBTC:    current.PriceBTC / hist.PriceBTC,
		ChangeUSD:    current.PriceUSD / hist.PriceUSD,
	}, nil
}
