package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-matchup-service/internal/domain/games"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "rate-limited game log fetch", slog.String("team", team), slog.String("season", season))
	return p.next.ListGameLogs(ctx, team, season, asOf)
}

func (p *rateLimitedProvider) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "rate-limited slate fetch", slog.Time("date", date))
	return p.next.ListGames(ctx, date)
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited call canceled")
		return ctx.Err()
	case <-p.ticker.C:
	}
	return nil
}
