// Package tenants provides the client for the backend tenant directory
// consumed by the namespace switcher, plus an optional redis-backed cache
// in front of it.
package tenants

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tenant is a single tenant record as returned by GET /api/tenants.
type Tenant struct {
	Slug     string `json:"slug"`
	Name     string `json:"name,omitempty"`
	IsActive bool   `json:"is_active"`
}

// TokenSource supplies the bearer token for directory calls. auth.Provider
// satisfies it.
type TokenSource interface {
	Token() string
}

// Client fetches the tenant list from the backend API.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a tenant directory client. baseURL is the API origin,
// e.g. "https://api.example.com".
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches all tenant records.
func (c *Client) List(ctx context.Context) (_ []Tenant, err error) {
	ctx, span := otel.Tracer("leadgrid/tenants").Start(ctx, "tenants.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tenants", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenant list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tenant list returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var list []Tenant
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode tenant list: %w", err)
	}

	return list, nil
}

// ActiveSlugs returns the slugs of active tenants, sorted.
func (c *Client) ActiveSlugs(ctx context.Context) ([]string, error) {
	list, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(list))
	for _, t := range list {
		if t.IsActive {
			slugs = append(slugs, t.Slug)
		}
	}
	sort.Strings(slugs)

	return slugs, nil
}
