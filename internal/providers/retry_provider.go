package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/logging"
	"nba-matchup-service/internal/metrics"
)

const (
	defaultRetryAttempts  = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with retry/backoff behavior. Delays
// grow exponentially between attempts; a RateLimitError with a Retry-After
// hint overrides the computed delay.
type retryingProvider struct {
	inner          DataProvider
	logger         *slog.Logger
	recorder       *metrics.Recorder
	providerName   string
	maxAttempts    int
	initialBackoff time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, initialBackoff time.Duration) DataProvider {
	if providerName == "" {
		providerName = "provider"
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:          inner,
		logger:         logger,
		recorder:       recorder,
		providerName:   providerName,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}
}

func (r *retryingProvider) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	var logs []games.GameLog
	err := r.do(ctx, "list game logs", func() error {
		var err error
		logs, err = r.inner.ListGameLogs(ctx, team, season, asOf)
		return err
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *retryingProvider) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	var slate []games.Game
	err := r.do(ctx, "list games", func() error {
		var err error
		slate, err = r.inner.ListGames(ctx, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return slate, nil
}

func (r *retryingProvider) do(ctx context.Context, op string, fn func() error) error {
	if r.inner == nil {
		return ErrProviderUnavailable
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialBackoff
	bo.MaxElapsedTime = 0

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := fn()
		r.recorder.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return nil
		}
		lastErr = err

		delay := bo.NextBackOff()
		if rl, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.providerName, rl.RetryAfter)
			if rl.RetryAfter > 0 {
				delay = rl.RetryAfter
			}
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "delay", delay, "err", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider call failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
