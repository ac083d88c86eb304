// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package restclient talks to the collection REST surface of the hosted
// backend (PostgREST conventions).
//
// # Wire Contract
//
//   - POST {endpoint}/rest/v1/{collection} with one JSON object, Prefer: return=minimal.
//   - GET  {endpoint}/rest/v1/{collection} returning a JSON array.
//   - The credential is sent as the apikey header and as the bearer token.
//
// Calls are independent. The client never retries; callers decide what a
// failure means for their run.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/taibuivan/jitata-seed/internal/platform/constants"
)

// maxErrorBody caps how much of a failed response body is kept.
const maxErrorBody = 4 << 10

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Collection string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Collection, e.StatusCode, e.Body)
}

// Config is the explicit connection setting for a [Client].
type Config struct {
	Endpoint   string
	Credential string
}

// Option customizes a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithRateLimit paces calls to at most rps requests per second. A zero or
// negative rps leaves calls unpaced.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// Client performs one HTTP call per method invocation.
type Client struct {
	baseURL    string
	credential string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New validates cfg and builds a [Client].
func New(cfg Config, opts ...Option) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("restclient: invalid endpoint %q", cfg.Endpoint)
	}
	if cfg.Credential == "" {
		return nil, fmt.Errorf("restclient: credential is required")
	}

	client := &Client{
		baseURL:    endpoint + constants.RESTPrefix,
		credential: cfg.Credential,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Insert POSTs record as a new row of collection.
func (c *Client) Insert(ctx context.Context, collection string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("restclient: failed to marshal %s record: %w", collection, err)
	}

	request, err := c.newRequest(ctx, http.MethodPost, collection, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set(constants.HeaderContentType, "application/json")
	request.Header.Set(constants.HeaderPrefer, constants.PreferReturnMinimal)

	response, err := c.do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return statusError(http.MethodPost, collection, response)
	}
	_, _ = io.Copy(io.Discard, response.Body)
	return nil
}

// List GETs every row of collection and decodes the array into out, which
// must be a pointer to a slice.
func (c *Client) List(ctx context.Context, collection string, out any) error {
	request, err := c.newRequest(ctx, http.MethodGet, collection, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return statusError(http.MethodGet, collection, response)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("restclient: failed to decode %s listing: %w", collection, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, collection string, body io.Reader) (*http.Request, error) {
	target := c.baseURL + "/" + url.PathEscape(collection)
	request, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("restclient: failed to create request: %w", err)
	}
	request.Header.Set(constants.HeaderAPIKey, c.credential)
	request.Header.Set(constants.HeaderAuthorization, "Bearer "+c.credential)
	return request, nil
}

func (c *Client) do(request *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(request.Context()); err != nil {
			return nil, fmt.Errorf("restclient: rate limiter: %w", err)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("restclient: %s %s failed: %w", request.Method, request.URL.Path, err)
	}
	return response, nil
}

func statusError(method, collection string, response *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	return &StatusError{
		Method:     method,
		Collection: collection,
		StatusCode: response.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
