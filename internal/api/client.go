// Package api is a typed, read-only client for the profit optimizer backend.
package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Default result-size limits used when a caller passes a non-positive limit.
const (
	DefaultBasesLimit         = 100
	DefaultModifiersLimit     = 100
	DefaultOpportunitiesLimit = 10
	DefaultTimeout            = 10 * time.Second
)

// Client issues GET requests against the backend. It never retries; a failed
// call is reported once as a *TransportError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A non-positive timeout falls back
// to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Info calls GET /.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	var out Info
	if err := c.get(ctx, "/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.get(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats calls GET /api/stats.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.get(ctx, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangeRates calls GET /api/exchange-rates. A backend without data
// answers 200 with only a message; check Available on the result.
func (c *Client) ExchangeRates(ctx context.Context) (*ExchangeRates, error) {
	var out ExchangeRates
	if err := c.get(ctx, "/api/exchange-rates", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leagues calls GET /api/leagues.
func (c *Client) Leagues(ctx context.Context) (*Leagues, error) {
	var out Leagues
	if err := c.get(ctx, "/api/leagues", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Currencies calls GET /api/currencies.
func (c *Client) Currencies(ctx context.Context) (*Currencies, error) {
	var out Currencies
	if err := c.get(ctx, "/api/currencies", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bases calls GET /api/bases?limit=N.
func (c *Client) Bases(ctx context.Context, limit int) (*Bases, error) {
	var out Bases
	if err := c.get(ctx, "/api/bases", limitQuery(limit, DefaultBasesLimit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Modifiers calls GET /api/modifiers?limit=N.
func (c *Client) Modifiers(ctx context.Context, limit int) (*Modifiers, error) {
	var out Modifiers
	if err := c.get(ctx, "/api/modifiers", limitQuery(limit, DefaultModifiersLimit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfitOpportunities calls GET /api/profit-opportunities?limit=N.
func (c *Client) ProfitOpportunities(ctx context.Context, limit int) (*Opportunities, error) {
	var out Opportunities
	if err := c.get(ctx, "/api/profit-opportunities", limitQuery(limit, DefaultOpportunitiesLimit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SchedulerStatus calls GET /api/scheduler/status.
func (c *Client) SchedulerStatus(ctx context.Context) (*SchedulerStatus, error) {
	var out SchedulerStatus
	if err := c.get(ctx, "/api/scheduler/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func limitQuery(limit, def int) url.Values {
	if limit <= 0 {
		limit = def
	}
	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

// get performs one request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := path
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
		endpoint = path + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Kind: KindNetwork, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classify(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &TransportError{Kind: KindHTTPStatus, Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// A body cut short by the client timeout surfaces here, not from Do.
		if te := classify(endpoint, err); te.Kind == KindTimeout {
			return te
		}
		return &TransportError{Kind: KindDecode, Endpoint: endpoint, Err: err}
	}
	return nil
}
