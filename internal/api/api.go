// Package api is a small HTTP client shared by the market-data providers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"trade-advisor/internal/logger"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	useLogging bool
}

type ClientOption func(*Client)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

func WithLogging(enabled bool) ClientOption {
	return func(c *Client) {
		c.useLogging = enabled
	}
}

func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Get fetches path (relative to the base URL when one is set) with the given
// query parameters and returns the response body. Status >= 400 is an error.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	full := c.baseURL + path
	if len(params) > 0 {
		full += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	if c.useLogging {
		logger.Debug(ctx, "HTTP request", "method", http.MethodGet, "url", full)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.useLogging {
		logger.Debug(ctx, "HTTP response",
			"url", full,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"body_size", len(body),
		)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, full)
	}
	return body, nil
}

// GetJSON fetches and decodes a JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, out any) error {
	body, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
