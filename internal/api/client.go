// Package api is the read-only client for the lastmonitor HTTP API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTopQueries is the limit sent to /stats/top-queries when the
// caller doesn't ask for one.
const DefaultTopQueries = 10

// Config carries the connection settings for a Client. BaseURL is
// required; an empty Token sends unauthenticated requests and leaves
// rejection to the server.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Error is a non-2xx response, carrying the status code and the raw
// response body text.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("api: unexpected status %d: %s", e.StatusCode, body)
}

// Client issues authenticated GETs against the monitoring API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a Client. A missing base URL is a configuration error and
// fails here, before any network call is attempted.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is not configured (set LASTMON_API_URL or api.base_url)")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: base URL scheme must be http or https, got %q", u.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// params collects query-string entries. Empty values are dropped so
// that unset filters never appear on the wire.
type params map[string]string

func (p params) encode() string {
	values := url.Values{}
	for k, v := range p {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	return values.Encode()
}

func (c *Client) get(ctx context.Context, path string, p params, out any) error {
	endpoint := c.baseURL + path
	if q := p.encode(); q != "" {
		endpoint += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("api: building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: reading %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: decoding %s response: %w", path, err)
	}
	return nil
}

// TweetsParams are the optional filters of /tweets. Zero values are
// omitted from the request.
type TweetsParams struct {
	Query  string // query tag filter
	Search string // free-text filter on tweet text
	Limit  int
	Offset int
}

// Tweets fetches stored tweets, newest first.
func (c *Client) Tweets(ctx context.Context, p TweetsParams) ([]Tweet, error) {
	var out []Tweet
	err := c.get(ctx, "/tweets", params{
		"q":      p.Query,
		"search": p.Search,
		"limit":  positiveInt(p.Limit),
		"offset": positiveInt(p.Offset),
	}, &out)
	return out, err
}

// NewsParams are the optional paging knobs of /news.
type NewsParams struct {
	Limit  int
	Offset int
}

// News fetches stored news items, newest first.
func (c *Client) News(ctx context.Context, p NewsParams) ([]News, error) {
	var out []News
	err := c.get(ctx, "/news", params{
		"limit":  positiveInt(p.Limit),
		"offset": positiveInt(p.Offset),
	}, &out)
	return out, err
}

// DailyStats fetches per-day tweet counts, most recent day first.
func (c *Client) DailyStats(ctx context.Context) ([]DailyStat, error) {
	var out []DailyStat
	err := c.get(ctx, "/stats/daily", nil, &out)
	return out, err
}

// TopQueries fetches the highest-volume query tags. limit <= 0 falls
// back to DefaultTopQueries.
func (c *Client) TopQueries(ctx context.Context, limit int) ([]QueryStat, error) {
	if limit <= 0 {
		limit = DefaultTopQueries
	}
	var out []QueryStat
	err := c.get(ctx, "/stats/top-queries", params{"limit": strconv.Itoa(limit)}, &out)
	return out, err
}

// Health performs a /health round-trip.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil, nil)
}

func positiveInt(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
