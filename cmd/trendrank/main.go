package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/prlinder/altcoin-trend-rank/internal/exchanges"
	"github.com/prlinder/altcoin-trend-rank/internal/infrastructure/coinmarketcap"
	"github.com/prlinder/altcoin-trend-rank/internal/infrastructure/logger"
	"github.com/prlinder/altcoin-trend-rank/internal/report"
	"github.com/prlinder/altcoin-trend-rank/internal/usecase"
)

type Config struct {
	Endpoints struct {
		RankingBaseURL string  `yaml:"ranking_base_url"`
		ChartBaseURL   string  `yaml:"chart_base_url"`
		TimeoutSec     int     `yaml:"timeout_seconds"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
	} `yaml:"endpoints"`
	Retry struct {
		Tries    int     `yaml:"tries"`
		DelaySec int     `yaml:"delay_seconds"`
		Backoff  float64 `yaml:"backoff"`
	} `yaml:"retry"`
	Run struct {
		RankingLimit int `yaml:"ranking_limit"`
		TopN         int `yaml:"top_n"`
		Workers      int `yaml:"workers"`
		FetchDays    int `yaml:"fetch_window_days"`
		// The chart endpoint switches to a coarser resolution tier at
		// exactly 30 days, so the request is kept this much short.
		FetchMarginSec   int    `yaml:"fetch_margin_seconds"`
		Day30Correction  int    `yaml:"day30_offset_correction"`
		ReferenceAssetID string `yaml:"reference_asset"`
		ReportFile       string `yaml:"report_file"`
	} `yaml:"run"`
	Logging struct {
		Level string             `yaml:"level"`
		File  *logger.FileConfig `yaml:"file"`
	} `yaml:"logging"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	// 1. Load .env (optional) + Config
	_ = godotenv.Load()
	configPath := os.Getenv("TRENDRANK_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Init CoinMarketCap client
	client := coinmarketcap.NewClient(
		cfg.Endpoints.RankingBaseURL,
		cfg.Endpoints.ChartBaseURL,
		time.Duration(cfg.Endpoints.TimeoutSec)*time.Second,
		cfg.Endpoints.RequestsPerSec,
		coinmarketcap.RetryPolicy{
			Tries:   cfg.Retry.Tries,
			Delay:   time.Duration(cfg.Retry.DelaySec) * time.Second,
			Backoff: cfg.Retry.Backoff,
		},
		log,
	)

	// 4. Init Pipeline
	resolver := usecase.NewLookbackResolver(cfg.Run.Day30Correction)
	builder := usecase.NewSummaryBuilder(resolver, log)
	pipeline := usecase.NewPipeline(client, client, builder, usecase.PipelineConfig{
		RankingLimit: cfg.Run.RankingLimit,
		FetchWindow:  time.Duration(cfg.Run.FetchDays) * 24 * time.Hour,
		FetchMargin:  time.Duration(cfg.Run.FetchMarginSec) * time.Second,
		Workers:      cfg.Run.Workers,
	}, log)

	// 5. Run (cancel on SIGINT/SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx)
	if err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
	for _, skip := range result.Skipped {
		log.Info("asset skipped", zap.String("asset", skip.AssetID), zap.Error(skip.Reason))
	}

	// 6. Render reports to console + file
	out := io.Writer(os.Stdout)
	if cfg.Run.ReportFile != "" {
		f, err := os.Create(cfg.Run.ReportFile)
		if err != nil {
			log.Fatal("cannot create report file", zap.Error(err))
		}
		defer f.Close()
		out = io.MultiWriter(os.Stdout, f)
	}

	ranker := usecase.NewRanker(cfg.Run.ReferenceAssetID)
	renderer := report.NewRenderer(out, ranker, cfg.Run.TopN)

	renderer.RenderRunHeader(time.Now())
	renderer.RenderFilterReports(report.PoloniexBanner,
		result.Table, usecase.FilterSet(exchanges.Poloniex))
	renderer.RenderSeparator()
	renderer.RenderFilterReports(report.BittrexBanner,
		result.Table, usecase.FilterSet(exchanges.Bittrex))
	renderer.RenderSeparator()
	renderer.RenderFilterReports(report.TopCoinsBanner(cfg.Run.TopN),
		result.Table, usecase.FilterSet(result.Table.Symbols()))
	fmt.Fprint(out, "\n\n\n")
}
