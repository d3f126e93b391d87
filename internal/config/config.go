package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Server struct {
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	HistoryDays       int    `json:"history_days"`
	LogFile           string `json:"log_file"`
}

type Upstream struct {
	Endpoint              string `json:"endpoint"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec"`
	Burst                 int    `json:"burst"`
	CacheTTLSeconds       int    `json:"cache_ttl_sec"`
	SlowCacheTTLSeconds   int    `json:"slow_cache_ttl_sec"`
	CacheMaxItems         int    `json:"cache_max_items"`
}

type Config struct {
	Server   Server   `json:"server"`
	Upstream Upstream `json:"upstream"`
}

func Default() Config {
	return Config{
		Server: Server{
			RequestTimeoutSec: 5,
			HistoryDays:       30,
			LogFile:           "stockmcp.log",
		},
		Upstream: Upstream{
			Endpoint:            "https://query1.finance.yahoo.com",
			CacheTTLSeconds:     30,
			SlowCacheTTLSeconds: 900,
			CacheMaxItems:       1024,
		},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		if x := atoi(v); x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("HISTORY_DAYS"); v != "" {
		if x := atoi(v); x > 0 {
			cfg.Server.HistoryDays = x
		}
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Server.LogFile = v
	}
	if v := os.Getenv("UPSTREAM_ENDPOINT"); v != "" {
		cfg.Upstream.Endpoint = v
	}
	if v := os.Getenv("UPSTREAM_MAX_RPM"); v != "" {
		if x := atoi(v); x >= 0 {
			cfg.Upstream.MaxRequestsPerMinute = x
		}
	}
	if v := os.Getenv("UPSTREAM_MIN_INTERVAL_SEC"); v != "" {
		if x := atoi(v); x >= 0 {
			cfg.Upstream.MinRequestIntervalSec = x
		}
	}
	if v := os.Getenv("UPSTREAM_BURST"); v != "" {
		if x := atoi(v); x > 0 {
			cfg.Upstream.Burst = x
		}
	}
	if v := os.Getenv("CACHE_TTL_SEC"); v != "" {
		if x := atoi(v); x >= 0 {
			cfg.Upstream.CacheTTLSeconds = x
		}
	}
	if v := os.Getenv("SLOW_CACHE_TTL_SEC"); v != "" {
		if x := atoi(v); x >= 0 {
			cfg.Upstream.SlowCacheTTLSeconds = x
		}
	}
	if v := os.Getenv("CACHE_MAX_ITEMS"); v != "" {
		if x := atoi(v); x > 0 {
			cfg.Upstream.CacheMaxItems = x
		}
	}
}

func atoi(s string) int {
	var x int
	_, _ = fmt.Sscanf(s, "%d", &x)
	return x
}
