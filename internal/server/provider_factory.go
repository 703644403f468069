package server

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"nba-matchup-service/internal/cache"
	"nba-matchup-service/internal/config"
	"nba-matchup-service/internal/metrics"
	"nba-matchup-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers
// (cache + rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	wrapped := f.withCache(cfg, base)
	if cfg.Provider == "mysportsfeeds" {
		// Space out upstream calls to respect the MySportsFeeds quota. The
		// fixture provider is local and needs no throttling.
		wrapped = providers.NewRateLimitedProvider(wrapped, providerRateInterval, f.logger)
	}
	return providers.NewRetryingProvider(wrapped, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

// withCache wraps the provider with a redis read-through cache for game logs
// when a redis address is configured.
func (f providerFactory) withCache(cfg config.Config, next providers.DataProvider) providers.DataProvider {
	if cfg.Redis.Addr == "" {
		return next
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return cache.New(next, client, cfg.Redis.CacheTTL, f.logger)
}
