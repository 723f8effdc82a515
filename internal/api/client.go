// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP and SSE client for the Life Hub backend.
//
// All backend access funnels through Client.Request: one entry point, JSON
// in and out, and normalized errors (see errors.go). Feature modules
// (vehicles.go, projects.go, ...) are thin typed groupings of Request
// calls and never embed UI concerns.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Configuration constants for the backend client.
const (
	// DefaultBaseURL is the default backend API root for a local install.
	DefaultBaseURL = "http://localhost:8087/api"

	// DefaultTimeout bounds unary requests. Streams are context-controlled
	// and use the timeout-free streaming client.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize caps response bodies to prevent memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB

	// requestsPerSecond caps the unary request rate. Pages fan out
	// parallel fetches on every navigation; the limiter keeps a fast
	// page-switcher from hammering the backend.
	requestsPerSecond = 50
	requestBurst      = 25
)

var (
	// Shared HTTP client with connection pooling for all unary requests.
	sharedHTTPClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
		Timeout: DefaultTimeout,
	}

	// sharedStreamingClient is used for SSE requests. No timeout: streams
	// run open-ended and are cancelled via context.
	sharedStreamingClient = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
)

// errorBody is the backend's structured error convention.
type errorBody struct {
	Error string `json:"error"`
}

// Client is the single entry point for all Life Hub backend calls.
//
// The zero value is not usable; construct with NewClient. Client is safe
// for concurrent use.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	streamClient *http.Client
	limiter      *rate.Limiter
}

// NewClient creates a client rooted at the given API base URL
// (e.g. "http://localhost:8087/api"). An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   sharedHTTPClient,
		streamClient: sharedStreamingClient,
		limiter:      rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// WithTimeout sets a custom timeout for unary requests. The streaming
// client is unaffected.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient = &http.Client{
		Transport: sharedHTTPClient.Transport,
		Timeout:   timeout,
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins a path under the API base. The path must begin with "/".
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// =============================================================================
// REQUEST
// =============================================================================

// Request performs an HTTP request against a path under the API base and
// decodes the JSON response into out (which may be nil for callers that
// discard the body). Contract:
//
//   - Content-Type defaults to application/json.
//   - Non-2xx: if the body parses and contains a string "error" field that
//     message is surfaced, otherwise "HTTP <status>".
//   - 2xx: body decoded as JSON; decode failure yields a parse error.
//   - No implicit retries, no implicit auth. Single-user, same-origin.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return wrapTransportError(err)
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindParse, Message: "failed to encode request", Err: err}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), reqBody)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := readBody(resp)
	if err != nil {
		return wrapTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			return newStatusError(resp.StatusCode, eb.Error)
		}
		return newStatusError(resp.StatusCode, "")
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindParse, Message: "failed to decode response", Err: err}
	}
	return nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Request(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Request(ctx, http.MethodDelete, path, nil, nil)
}

// readBody reads the response body with a size limit.
func readBody(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", int64(MaxResponseSize))
	}
	return body, nil
}

// =============================================================================
// QUERY HELPERS
// =============================================================================

// Query builds a query string from key/value pairs, skipping empty values.
// Returns "" or "?k=v&..." ready to append to a path.
func Query(pairs ...string) string {
	if len(pairs)%2 != 0 {
		panic("api.Query: odd number of arguments")
	}
	values := url.Values{}
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			values.Set(pairs[i], pairs[i+1])
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// itoa stringifies an id for path composition.
func itoa(id int64) string {
	return fmt.Sprintf("%d", id)
}
