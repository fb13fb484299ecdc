// WiFind Go API - Client and demo for the WiFind WiFi scan data API
// Copyright 2026 The WiFind Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wifimapping/goapi

package wifind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/wifimapping/goapi/internal/logging"
	"github.com/wifimapping/goapi/internal/metrics"
)

// maxErrorBodySize limits how much of a failed response is kept in StatusError.
const maxErrorBodySize = 64 * 1024 // 64KB

// ErrInvalidURL is returned by NewClient when the API URL cannot be used.
var ErrInvalidURL = errors.New("invalid API URL")

// API is the public call surface of the WiFind data API.
//
// Implemented by Client and CircuitBreakerClient. Both methods return the
// response body exactly as the server sent it.
type API interface {
	Query(ctx context.Context, opts Options) ([]byte, error)
	GetAccessPoints(ctx context.Context, opts Options) ([]byte, error)
}

// Config configures a Client.
type Config struct {
	// URL of the API. Default: DefaultURL
	URL string

	// Timeout for a single request, ignored when HTTPClient is set.
	// Zero means no client timeout; the request context is the only bound.
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing requests on the client side.
	// Zero disables throttling.
	RequestsPerSecond float64

	// Burst is the throttle bucket size. Default: 1
	Burst int

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
}

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, string(e.Body))
}

// Client issues WiFind API requests.
//
// Thread Safety: Safe for concurrent use. Calls share nothing but the
// underlying http.Client and the optional throttle.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client from cfg, applying defaults for zero values.
func NewClient(cfg Config) (*Client, error) {
	rawURL := cfg.URL
	if rawURL == "" {
		rawURL = DefaultURL
	}

	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidURL, rawURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w %q: scheme and host are required", ErrInvalidURL, rawURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
		if cfg.Timeout > 0 {
			httpClient.Timeout = cfg.Timeout
		}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL: baseURL,
		client:  httpClient,
		limiter: limiter,
	}, nil
}

// Query requests individual scans matching opts.
func (c *Client) Query(ctx context.Context, opts Options) ([]byte, error) {
	return c.Do(ctx, VariantScan, opts)
}

// GetAccessPoints requests unique access points matching opts.
func (c *Client) GetAccessPoints(ctx context.Context, opts Options) ([]byte, error) {
	return c.Do(ctx, VariantAccessPoints, opts)
}

// RequestURL returns the URL a request for variant and opts would use.
func (c *Client) RequestURL(variant Variant, opts Options) string {
	u := *c.baseURL
	query := u.Query()
	for key, values := range variant.Params(opts).Values() {
		query[key] = values
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// Do translates opts for variant, sends the request and returns the body.
// The HTTP status is the only thing inspected; the body is not parsed.
func (c *Client) Do(ctx context.Context, variant Variant, opts Options) ([]byte, error) {
	if dropped := DroppedKeys(queryParams, opts); len(dropped) > 0 {
		logging.Ctx(ctx).Debug().
			Str("variant", variant.String()).
			Strs("dropped", dropped).
			Msg("Ignoring unknown query options")
	}

	reqURL := c.RequestURL(variant, opts)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s request throttled: %w", variant, err)
		}
	}

	start := time.Now()
	body, statusCode, err := c.get(ctx, reqURL)
	duration := time.Since(start)
	metrics.RecordUpstreamRequest(variant.String(), statusCode, duration)

	if err != nil {
		logging.Ctx(ctx).Debug().
			Err(err).
			Str("variant", variant.String()).
			Int("status", statusCode).
			Dur("duration", duration).
			Msg("WiFind request failed")
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("variant", variant.String()).
		Int("bytes", len(body)).
		Dur("duration", duration).
		Msg("WiFind request completed")

	return body, nil
}

// get performs the GET and returns the body with the status code (0 if none).
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request failed: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, resp.StatusCode, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       readBodyForError(resp.Body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response failed: %w", err)
	}
	return body, resp.StatusCode, nil
}

// readBodyForError reads at most maxErrorBodySize bytes of a failed response.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Decode unmarshals a JSON response body.
func Decode[T any](body []byte) (T, error) {
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
