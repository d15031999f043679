package fixtures

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// httpDoer lets tests substitute the HTTP transport.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream fixtures API.
type Config struct {
	APIHost    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches fixtures from the API-Football v3 endpoint and maps
// them to search results. Failures surface as a single error; there is
// no retry and no caching.
type Client struct {
	apiHost    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a fixtures client with the provided configuration.
func NewClient(cfg Config) *Client {
	host := cfg.APIHost
	if host == "" {
		host = "v3.football.api-sports.io"
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		apiHost:    host,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

// Search fetches one page of fixtures for the date and filters them
// client-side: a fixture matches when the city substring appears in the
// venue city or either team name, case-insensitively.
func (c *Client) Search(ctx context.Context, date, city string) ([]MatchSearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+c.apiHost+"/fixtures", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("date", date)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fixtures: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fixtures: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload fixturesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fixtures: malformed response: %w", err)
	}
	if hasErrors(payload.Errors) {
		return nil, fmt.Errorf("fixtures: upstream rejected the request (limit or permissions)")
	}

	needle := strings.ToLower(strings.TrimSpace(city))
	results := make([]MatchSearchResult, 0)
	for _, item := range payload.Response {
		if !item.matches(needle) {
			continue
		}
		results = append(results, item.toResult())
	}
	return results, nil
}

// hasErrors reports whether the upstream errors field carries anything.
// The API encodes "no errors" as an empty array and real errors as an
// object, so the raw bytes are inspected instead of a typed field.
func hasErrors(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return false
	}
	return true
}
