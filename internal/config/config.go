package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	PollInterval  Duration
	Provider      string
	MySportsFeeds MySportsFeedsConfig
	Redis         RedisConfig
	Metrics       MetricsConfig
	Snapshots     SnapshotSyncConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		PollInterval:  durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:      envOrDefault(envProvider, defaultProvider),
		MySportsFeeds: loadMySportsFeeds(),
		Redis:         loadRedis(),
		Metrics:       loadMetrics(),
		Snapshots:     loadSnapshotSync(),
	}
}
