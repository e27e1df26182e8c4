// Package sparql speaks the SPARQL 1.1 protocol over HTTP: form-encoded POST
// queries against a Fuseki-compatible endpoint, JSON result bindings back.
package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sudutpuncak/puncak/internal/domain"
	"github.com/sudutpuncak/puncak/internal/metrics"
)

const acceptResultsJSON = "application/sparql-results+json"

// Client issues queries against a SPARQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

// Config holds the SPARQL endpoint settings.
type Config struct {
	Endpoint string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// NewClient creates a SPARQL protocol client.
func NewClient(cfg Config) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   cfg.Logger,
	}
}

// Query executes a SELECT query and returns its result bindings. operation
// labels the query for metrics and logs, never the query text itself.
func (c *Client) Query(ctx context.Context, operation, query string) ([]Binding, error) {
	rs, err := c.do(ctx, operation, query)
	if err != nil {
		return nil, err
	}
	return rs.Results.Bindings, nil
}

// Ask executes an ASK query and returns the boolean verdict.
func (c *Client) Ask(ctx context.Context, operation, query string) (bool, error) {
	rs, err := c.do(ctx, operation, query)
	if err != nil {
		return false, err
	}
	if rs.Boolean == nil {
		return false, fmt.Errorf("ask %s: no boolean in response: %w", operation, domain.ErrQueryRejected)
	}
	return *rs.Boolean, nil
}

// Ping checks endpoint reachability with a minimal ASK query.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.Ask(ctx, "ping", Ping()); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, operation, query string) (*resultSet, error) {
	form := url.Values{"query": {query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", acceptResultsJSON)

	start := time.Now()

	resp, err := c.http.Do(req)

	duration := time.Since(start)

	if err != nil {
		metrics.StoreQueriesTotal.WithLabelValues(operation, "error").Inc()
		return nil, fmt.Errorf("query %s: %w: %w", operation, domain.ErrStoreUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		metrics.StoreQueriesTotal.WithLabelValues(operation, "rejected").Inc()
		c.logger.Warn("store rejected query",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, fmt.Errorf("query %s: store returned %d: %w",
			operation, resp.StatusCode, domain.ErrQueryRejected)
	}

	var rs resultSet
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		metrics.StoreQueriesTotal.WithLabelValues(operation, "error").Inc()
		return nil, fmt.Errorf("query %s: decode response: %w: %w",
			operation, domain.ErrQueryRejected, err)
	}

	metrics.StoreQueriesTotal.WithLabelValues(operation, "success").Inc()
	metrics.StoreQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())

	return &rs, nil
}
