package config

import "time"

const (
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
	envCacheTTL      = "CACHE_TTL"

	defaultCacheTTL = 15 * Duration(time.Minute)
)

// RedisConfig controls the optional game-log cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

func loadRedis() RedisConfig {
	db := intEnvOrDefault(envRedisDB, 0)
	return RedisConfig{
		Addr:     envOrDefault(envRedisAddr, ""),
		Password: envOrDefault(envRedisPassword, ""),
		DB:       db,
		CacheTTL: durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}
