package coinmarketcap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultRankingBaseURL = "https://api.coinmarketcap.com"
	DefaultChartBaseURL   = "https://graphs2.coinmarketcap.com"
)

// RetryPolicy is the bounded exponential backoff applied to every fetch.
// Attempt n waits Delay * Backoff^(n-1) after a transient failure.
type RetryPolicy struct {
	Tries   int
	Delay   time.Duration
	Backoff float64
}

// DefaultRetryPolicy matches the endpoint's tolerance: 4 tries, 10s
// initial delay, 4x backoff.
var DefaultRetryPolicy = RetryPolicy{Tries: 4, Delay: 10 * time.Second, Backoff: 4}

// Client talks to the ranking endpoint and the chart endpoint. Retries
// and rate limiting live here so the callers only ever see success or a
// terminal error per asset.
type Client struct {
	rankingBaseURL string
	chartBaseURL   string
	httpClient     *http.Client
	limiter        *rate.Limiter
	retry          RetryPolicy
	log            *zap.Logger
}

// NewClient builds a client. requestsPerSec throttles all requests to
// both endpoints; the chart endpoint is unofficial and unforgiving.
func NewClient(rankingBaseURL, chartBaseURL string, timeout time.Duration, requestsPerSec float64, retry RetryPolicy, log *zap.Logger) *Client {
	if rankingBaseURL == "" {
		rankingBaseURL = DefaultRankingBaseURL
	}
	if chartBaseURL == "" {
		chartBaseURL = DefaultChartBaseURL
	}
	if retry.Tries < 1 {
		retry = DefaultRetryPolicy
	}
	return &Client{
		rankingBaseURL: rankingBaseURL,
		chartBaseURL:   chartBaseURL,
		httpClient:     &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Limit(requestsPerSec), 1),
		retry:          retry,
		log:            log,
	}
}

// getWithRetry performs a rate-limited GET, retrying transient failures
// (transport errors and 5xx) with exponential backoff. Non-2xx below 500
// is terminal: retrying a 4xx only burns the rate budget.
func (c *Client) getWithRetry(ctx context.Context, url string) ([]byte, error) {
	delay := c.retry.Delay
	var lastErr error

	for attempt := 1; attempt <= c.retry.Tries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var se *statusError
		if errors.As(err, &se) && se.code < 500 {
			break
		}
		if attempt == c.retry.Tries {
			break
		}

		c.log.Debug("request failed, retrying",
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		delay = time.Duration(float64(delay) * c.retry.Backoff)
	}

	return nil, fmt.Errorf("GET %s: %w", url, lastErr)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: string(body)}
	}
	return body, nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, truncate(e.body, 200))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
