package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prlinder/altcoin-trend-rank/internal/domain"
)

// PipelineConfig carries the run parameters that are tied to the chart
// endpoint's behavior rather than derived from the data.
type PipelineConfig struct {
	// RankingLimit is how many top-cap assets to pull, 0 for all.
	RankingLimit int
	// FetchWindow is the span of history requested per asset.
	FetchWindow time.Duration
	// FetchMargin shortens the requested window: asking for exactly 30
	// days risks the endpoint switching to a coarser resolution tier.
	FetchMargin time.Duration
	// Workers bounds the concurrent series fetches.
	Workers int
}

// SkipRecord notes one asset dropped from the run and why. Skips are
// normal (thin or missing history) and are reported, not raised.
type SkipRecord struct {
	AssetID string
	Reason  error
}

// RunResult is everything a single batch run produced: the summary table
// plus the per-asset skip log.
type RunResult struct {
	Table   *SummaryTable
	Skipped []SkipRecord
}

// Pipeline runs one batch: ranking snapshot, per-asset series fetches
// through a bounded worker pool, summary building, and merge. Each worker
// owns its asset's record exclusively, so the only synchronization is the
// fan-in channel.
type Pipeline struct {
	ranking domain.RankingSource
	series  domain.SeriesSource
	builder *SummaryBuilder
	cfg     PipelineConfig
	log     *zap.Logger

	timeNow func() time.Time // For testing
}

func NewPipeline(ranking domain.RankingSource, series domain.SeriesSource, builder *SummaryBuilder, cfg PipelineConfig, log *zap.Logger) *Pipeline {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Pipeline{
		ranking: ranking,
		series:  series,
		builder: builder,
		cfg:     cfg,
		log:     log,
		timeNow: time.Now,
	}
}

type assetResult struct {
	summary *domain.AssetSummary
	skip    *SkipRecord
}

// Run executes the batch. Only a failed ranking fetch is fatal; every
// per-asset failure becomes a skip record.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	snapshots, err := p.ranking.FetchRanking(ctx, p.cfg.RankingLimit)
	if err != nil {
		return nil, err
	}
	p.log.Info("fetched ranking snapshot", zap.Int("assets", len(snapshots)))

	end := p.timeNow()
	start := end.Add(-p.cfg.FetchWindow + p.cfg.FetchMargin)

	jobs := make(chan domain.AssetSnapshot)
	results := make(chan assetResult)

	var wg sync.WaitGroup
	for i := 0; i < p.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for snap := range jobs {
				results <- p.processAsset(ctx, snap, start, end)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, snap := range snapshots {
			select {
			case jobs <- snap:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &RunResult{Table: NewSummaryTable()}
	merged := make(map[string]*domain.AssetSummary, len(snapshots))
	for res := range results {
		if res.skip != nil {
			result.Skipped = append(result.Skipped, *res.skip)
			continue
		}
		merged[res.summary.ID] = res.summary
	}
	// Workers finish in arbitrary order; restore the ranking order in
	// the table so iteration and the "all symbols" filter are stable.
	for _, snap := range snapshots {
		if s, ok := merged[snap.ID]; ok {
			result.Table.Add(s)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.log.Info("summary table built",
		zap.Int("assets", result.Table.Len()),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}

func (p *Pipeline) processAsset(ctx context.Context, snap domain.AssetSnapshot, start, end time.Time) assetResult {
	series, err := p.series.FetchSeries(ctx, snap.ID, start, end)
	if err != nil {
		p.log.Warn("skipping asset, series fetch failed",
			zap.String("asset", snap.ID), zap.Error(err))
		return assetResult{skip: &SkipRecord{AssetID: snap.ID, Reason: err}}
	}

	summary, err := p.builder.Build(snap, series)
	if err != nil {
		p.log.Warn("skipping asset, summary build failed",
			zap.String("asset", snap.ID), zap.Error(err))
		return assetResult{skip: &SkipRecord{AssetID: snap.ID, Reason: err}}
	}
	return assetResult{summary: summary}
}
