package server

import (
	"log/slog"

	"nba-matchup-service/internal/config"
	"nba-matchup-service/internal/providers"
	"nba-matchup-service/internal/providers/fixture"
	"nba-matchup-service/internal/providers/mysportsfeeds"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "mysportsfeeds":
		return mysportsfeeds.NewClient(mysportsfeeds.Config{
			BaseURL:  cfg.MySportsFeeds.BaseURL,
			APIKey:   cfg.MySportsFeeds.APIKey,
			Password: cfg.MySportsFeeds.Password,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
