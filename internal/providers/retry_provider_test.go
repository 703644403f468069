package providers

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/metrics"
)

type flakeyProvider struct {
	failures int
	calls    int
}

func (f *flakeyProvider) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	_ = ctx
	_ = team
	_ = season
	_ = asOf
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("boom")
	}
	return []games.GameLog{{Team: "BOS", Game: games.Game{ID: "ok"}}}, nil
}

func (f *flakeyProvider) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	_ = ctx
	_ = date
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("boom")
	}
	return []games.Game{{ID: "ok"}}, nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, time.Millisecond)

	logs, err := rp.ListGameLogs(context.Background(), "BOS", "2024-2025-regular", time.Time{})
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(logs) != 1 || logs[0].Game.ID != "ok" {
		t.Fatalf("unexpected logs %+v", logs)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond)

	_, err := rp.ListGames(context.Background(), time.Now())
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.ListGames(ctx, time.Now())
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(&rateLimitThenSuccessProvider{}, nil, rec, "rl", 2, time.Millisecond)

	slate, err := rp.ListGames(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if len(slate) != 1 || slate[0].ID != "ok" {
		t.Fatalf("unexpected slate %+v", slate)
	}

	if got := rec.RateLimitHits("rl"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.ProviderCalls("rl"); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
	if got := rec.ProviderErrors("rl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastRetryAfter("rl"); got != time.Millisecond {
		t.Fatalf("expected retry-after recorded, got %s", got)
	}
}

func TestRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, metrics.NewRecorder(), "", 0, 0).(*retryingProvider)
	if rp.providerName != "provider" {
		t.Fatalf("expected fallback provider name, got %s", rp.providerName)
	}
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	if rp.initialBackoff != defaultInitialBackoff {
		t.Fatalf("expected default backoff, got %s", rp.initialBackoff)
	}

	if _, err := rp.ListGames(context.Background(), time.Now()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable with nil inner, got %v", err)
	}
}

type rateLimitThenSuccessProvider struct {
	calls int
}

func (f *rateLimitThenSuccessProvider) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	_ = ctx
	_ = team
	_ = season
	_ = asOf
	return nil, nil
}

func (f *rateLimitThenSuccessProvider) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	_ = ctx
	_ = date
	f.calls++
	if f.calls == 1 {
		return nil, &RateLimitError{
			Provider:   "test",
			StatusCode: 429,
			RetryAfter: time.Millisecond,
		}
	}
	return []games.Game{{ID: "ok"}}, nil
}
