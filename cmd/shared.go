package cmd

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"stockmcp/internal/config"
	"stockmcp/internal/httpx"
	"stockmcp/internal/provider/cache"
	"stockmcp/internal/provider/ratelimit"
	"stockmcp/internal/provider/yahoo"
	"stockmcp/internal/quote"
	"stockmcp/internal/service"
	"stockmcp/internal/tickers"
)

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	return config.Load(path)
}

// buildSource assembles the upstream chain: Yahoo client, then an optional
// rate limiter, then an optional cache. Token bucket with burst is preferred
// when a requests-per-minute limit is set, min-interval otherwise.
func buildSource(cfg config.Config, hc *httpx.Client) quote.Source {
	var src quote.Source = yahoo.New(
		yahoo.WithBaseURL(cfg.Upstream.Endpoint),
		yahoo.WithHTTPClient(hc),
		yahoo.WithHeader(http.Header{"Accept": []string{"application/json"}}),
	)
	if cfg.Upstream.MaxRequestsPerMinute > 0 {
		rate := float64(cfg.Upstream.MaxRequestsPerMinute) / 60.0
		burst := cfg.Upstream.Burst
		if burst <= 0 {
			burst = 1
		}
		src = &ratelimit.TokenBucketSource{S: src, TB: ratelimit.NewTokenBucket(rate, burst)}
	} else if cfg.Upstream.MinRequestIntervalSec > 0 {
		src = &ratelimit.MinInterval{S: src, Interval: time.Duration(cfg.Upstream.MinRequestIntervalSec) * time.Second}
	}
	if cfg.Upstream.CacheTTLSeconds > 0 {
		src = &cache.Source{
			S:        src,
			TTL:      time.Duration(cfg.Upstream.CacheTTLSeconds) * time.Second,
			SlowTTL:  time.Duration(cfg.Upstream.SlowCacheTTLSeconds) * time.Second,
			MaxItems: cfg.Upstream.CacheMaxItems,
		}
	}
	return src
}

func buildService(cfg config.Config, logger *slog.Logger) (*service.Service, error) {
	hc := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)
	idx, err := tickers.NewIndex()
	if err != nil {
		return nil, err
	}
	return service.New(service.Config{
		Source:      buildSource(cfg, hc),
		Tickers:     idx,
		Timeout:     time.Duration(cfg.Server.RequestTimeoutSec) * time.Second,
		HistoryDays: cfg.Server.HistoryDays,
		Logger:      logger,
	}), nil
}
