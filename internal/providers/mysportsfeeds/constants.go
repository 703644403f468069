package mysportsfeeds

import "time"

const (
	providerName       = "mysportsfeeds"
	defaultBaseURL     = "https://api.mysportsfeeds.com/v2.1/pull/nba"
	defaultHTTPTimeout = 10 * time.Second
	defaultPassword    = "MYSPORTSFEEDS"
)
