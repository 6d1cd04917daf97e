// Package httpcap is the HTTP capability the wizard engine consumes: issue a
// typed request, return the parsed body, error on non-2xx. Auth and token
// handling stay with the caller via headers or a custom http.Client.
package httpcap

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

// Doer issues one request and returns the raw response body. Implementations
// must treat any non-2xx status as an error.
type Doer interface {
	Do(ctx context.Context, method, url string, body any) (json.RawMessage, error)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpcap: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithHeader sets a header on every request, e.g. an Authorization token.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		c.headers[name] = value
	}
}

// Client is the default Doer, JSON in and JSON out against a base URL.
type Client struct {
	base    string
	hc      *http.Client
	headers map[string]string
}

// NewClient builds a client rooted at baseURL.
func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
		headers: make(map[string]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Do implements Doer.
func (c *Client) Do(ctx context.Context, method, url string, body any) (json.RawMessage, error) {
	if ctx == nil {
		return nil, fmt.Errorf("httpcap: context is required")
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("httpcap: encode body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := url
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.base + "/" + strings.TrimLeft(url, "/")
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("httpcap: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpcap: do request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpcap: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
	}
	return json.RawMessage(payload), nil
}

// ResolveURL substitutes an entity id into a URL template. Both {id} and :id
// placeholder styles are supported; templates without a placeholder pass
// through unchanged.
func ResolveURL(template, id string) string {
	out := strings.ReplaceAll(template, "{id}", id)
	if idx := strings.Index(out, ":id"); idx >= 0 {
		end := idx + len(":id")
		if end == len(out) || out[end] == '/' || out[end] == '?' {
			out = out[:idx] + id + out[end:]
		}
	}
	return out
}
