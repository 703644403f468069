package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/logging"
	"nba-matchup-service/internal/providers"
	"nba-matchup-service/internal/timeutil"
)

const defaultTTL = 15 * time.Minute

// Store is the slice of the redis client the cache needs. *redis.Client
// satisfies it; tests can supply a stub.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// GameLogProvider wraps a DataProvider with a redis read-through cache for
// game log fetches. Slate fetches pass through untouched; they change all day
// and are already polled on an interval.
//
// Cache failures are soft: a miss or a redis error falls through to the
// upstream provider, a failed write only logs.
type GameLogProvider struct {
	next   providers.DataProvider
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// New wraps the provider with a redis-backed cache. A ttl <= 0 uses the default.
func New(next providers.DataProvider, store Store, ttl time.Duration, logger *slog.Logger) *GameLogProvider {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &GameLogProvider{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *GameLogProvider) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	key := cacheKey(team, season, asOf)

	if logs, ok := c.lookup(ctx, key); ok {
		return logs, nil
	}

	logs, err := c.next.ListGameLogs(ctx, team, season, asOf)
	if err != nil {
		return nil, err
	}

	c.put(ctx, key, logs)
	return logs, nil
}

func (c *GameLogProvider) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	return c.next.ListGames(ctx, date)
}

func (c *GameLogProvider) lookup(ctx context.Context, key string) ([]games.GameLog, bool) {
	if c.store == nil {
		return nil, false
	}

	raw, err := c.store.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logWarn(ctx, "cache read failed", "key", key, "err", err)
		}
		return nil, false
	}

	var logs []games.GameLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		c.logWarn(ctx, "cache entry corrupt", "key", key, "err", err)
		return nil, false
	}
	return logs, true
}

func (c *GameLogProvider) put(ctx context.Context, key string, logs []games.GameLog) {
	if c.store == nil {
		return
	}

	raw, err := json.Marshal(logs)
	if err != nil {
		c.logWarn(ctx, "cache encode failed", "key", key, "err", err)
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logWarn(ctx, "cache write failed", "key", key, "err", err)
	}
}

func (c *GameLogProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, c.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

func cacheKey(team, season string, asOf time.Time) string {
	day := "latest"
	if !asOf.IsZero() {
		day = timeutil.FormatDate(asOf)
	}
	return fmt.Sprintf("gamelogs:%s:%s:%s", team, season, day)
}
