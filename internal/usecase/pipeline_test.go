package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
	"github.com/prlinder/altcoin-trend-rank/internal/usecase"
)

// MockRankingSource returns a fixed snapshot list.
type MockRankingSource struct {
	Snapshots []domain.AssetSnapshot
	Err       error
}

func (m *MockRankingSource) FetchRanking(ctx context.Context, limit int) ([]domain.AssetSnapshot, error) {
	return m.Snapshots, m.Err
}

// MockSeriesSource serves per-asset canned series or errors.
type MockSeriesSource struct {
	Series map[string]domain.TimeSeries
	Errs   map[string]error
}

func (m *MockSeriesSource) FetchSeries(ctx context.Context, assetID string, start, end time.Time) (domain.TimeSeries, error) {
	if err, ok := m.Errs[assetID]; ok {
		return nil, err
	}
	return m.Series[assetID], nil
}

func newPipeline(ranking *MockRankingSource, series *MockSeriesSource, workers int) *usecase.Pipeline {
	builder := usecase.NewSummaryBuilder(usecase.NewLookbackResolver(5), zap.NewNop())
	return usecase.NewPipeline(ranking, series, builder, usecase.PipelineConfig{
		RankingLimit: 0,
		FetchWindow:  30 * 24 * time.Hour,
		FetchMargin:  30 * time.Minute,
		Workers:      workers,
	}, zap.NewNop())
}

func TestPipeline_Run(t *testing.T) {
	ranking := &MockRankingSource{Snapshots: []domain.AssetSnapshot{
		snapshot("bitcoin", "BTC"),
		snapshot("ethereum", "ETH"),
		snapshot("litecoin", "LTC"),
	}}
	series := &MockSeriesSource{Series: map[string]domain.TimeSeries{
		"bitcoin":  uniformSeries(2881, 1_500_000_000, 900),
		"ethereum": uniformSeries(2881, 1_500_000_000, 900),
		"litecoin": uniformSeries(50, 1_500_000_000, 900),
	}}

	result, err := newPipeline(ranking, series, 3).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Table.Len() != 3 {
		t.Fatalf("expected 3 summaries, got %d", result.Table.Len())
	}
	if len(result.Skipped) != 0 {
		t.Errorf("expected no skips, got %v", result.Skipped)
	}

	// Workers merge in arbitrary order; the table must keep ranking order.
	ids := result.Table.IDs()
	want := []string{"bitcoin", "ethereum", "litecoin"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("table order = %v, want %v", ids, want)
		}
	}

	// The thin series keeps its asset, minus the long windows.
	ltc, _ := result.Table.Get("litecoin")
	if !ltc.Window(domain.WindowHour).Available {
		t.Error("litecoin hour window should be available")
	}
	if ltc.Window(domain.Window7Day).Available {
		t.Error("litecoin 7-day window should be unavailable")
	}
}

func TestPipeline_AssetFailuresAreSkips(t *testing.T) {
	fetchErr := errors.New("connection reset")
	ranking := &MockRankingSource{Snapshots: []domain.AssetSnapshot{
		snapshot("bitcoin", "BTC"),
		snapshot("deadcoin", "DEAD"),
		snapshot("thincoin", "THIN"),
	}}
	series := &MockSeriesSource{
		Series: map[string]domain.TimeSeries{
			"bitcoin":  uniformSeries(2881, 1_500_000_000, 900),
			"thincoin": uniformSeries(2, 1_500_000_000, 900),
		},
		Errs: map[string]error{"deadcoin": fetchErr},
	}

	result, err := newPipeline(ranking, series, 2).Run(context.Background())
	if err != nil {
		t.Fatalf("run must survive per-asset failures, got %v", err)
	}

	if result.Table.Len() != 1 {
		t.Errorf("expected 1 summary, got %d", result.Table.Len())
	}
	if len(result.Skipped) != 2 {
		t.Fatalf("expected 2 skip records, got %d", len(result.Skipped))
	}

	reasons := make(map[string]error, len(result.Skipped))
	for _, skip := range result.Skipped {
		reasons[skip.AssetID] = skip.Reason
	}
	if !errors.Is(reasons["deadcoin"], fetchErr) {
		t.Errorf("deadcoin skip should carry the fetch error, got %v", reasons["deadcoin"])
	}
	if !errors.Is(reasons["thincoin"], domain.ErrInsufficientData) {
		t.Errorf("thincoin skip should carry ErrInsufficientData, got %v", reasons["thincoin"])
	}
}

func TestPipeline_RankingFailureIsFatal(t *testing.T) {
	rankErr := errors.New("503 from ranking endpoint")
	ranking := &MockRankingSource{Err: rankErr}
	series := &MockSeriesSource{}

	_, err := newPipeline(ranking, series, 1).Run(context.Background())
	if !errors.Is(err, rankErr) {
		t.Errorf("expected ranking error to be fatal, got %v", err)
	}
}
