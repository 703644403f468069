package mysportsfeeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nba-matchup-service/internal/domain/games"
	"nba-matchup-service/internal/providers"
	"nba-matchup-service/internal/timeutil"
)

// Config controls how the MySportsFeeds client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Password   string
	HTTPClient *http.Client
}

// Client fetches game logs and daily slates from the MySportsFeeds pull API
// and maps them to domain models. Authentication is HTTP basic with the API
// key as the username.
type Client struct {
	baseURL    string
	apiKey     string
	password   string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a MySportsFeeds client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		password:   resolvePassword(cfg.Password),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// ListGameLogs retrieves a team's game logs for the season, optionally
// bounded by asOf via the feed's until-date filter.
func (c *Client) ListGameLogs(ctx context.Context, team, season string, asOf time.Time) ([]games.GameLog, error) {
	url := fmt.Sprintf("%s/%s/team_gamelogs.json", c.baseURL, season)
	req, err := c.buildRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("team", strings.ToLower(feedAbbreviation(team)))
	if !asOf.IsZero() {
		q.Set("date", "until-"+timeutil.FormatCompactDate(asOf))
	}
	req.URL.RawQuery = q.Encode()

	var payload gamelogsResponse
	if err := c.doJSON(req, &payload); err != nil {
		return nil, err
	}

	logs := make([]games.GameLog, 0, len(payload.Gamelogs))
	for _, entry := range payload.Gamelogs {
		logs = append(logs, mapGameLog(entry, season))
	}
	return logs, nil
}

// ListGames retrieves the slate of games for a single day.
func (c *Client) ListGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	if date.IsZero() {
		date = c.now()
	}
	season := timeutil.SeasonForDate(date)
	url := fmt.Sprintf("%s/%s/date/%s/games.json", c.baseURL, season, timeutil.FormatCompactDate(date))
	req, err := c.buildRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	var payload gamesResponse
	if err := c.doJSON(req, &payload); err != nil {
		return nil, err
	}

	slate := make([]games.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		slate = append(slate, mapScheduledGame(g, season))
	}
	return slate, nil
}

func (c *Client) buildRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.apiKey, c.password)
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mysportsfeeds: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
