package config

const (
	envMsfBaseURL  = "MSF_BASE_URL"
	envMsfAPIKey   = "MSF_API_KEY"
	envMsfPassword = "MSF_PASSWORD"

	defaultMsfBaseURL = "https://api.mysportsfeeds.com/v2.1/pull/nba"
)

// MySportsFeedsConfig controls how we talk to the MySportsFeeds API.
type MySportsFeedsConfig struct {
	BaseURL  string
	APIKey   string
	Password string
}

func loadMySportsFeeds() MySportsFeedsConfig {
	return MySportsFeedsConfig{
		BaseURL:  envOrDefault(envMsfBaseURL, defaultMsfBaseURL),
		APIKey:   envOrDefault(envMsfAPIKey, ""),
		Password: envOrDefault(envMsfPassword, ""),
	}
}
