// Package http builds the HTTP client used to reach a node's JSON-RPC
// endpoint. Requests are retried on connection errors, 429 and 5xx answers,
// honouring Retry-After. Once retries are exhausted the last response is
// handed back unchanged so the caller can report its status.
package http

import (
	"net/http"
	"time"

	"github.com/gabapcia/chainindex/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration     // per attempt
	retryWaitMin time.Duration     // first backoff step
	retryWaitMax time.Duration     // backoff ceiling
	retryMax     int               // retries after the first attempt
	headers      map[string]string // sent with every request, e.g. provider API keys
}

// Option configures the client.
type Option func(*config)

// logRetry is the RequestLogHook: silent on the first attempt, warn on retries.
func logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	logger.Warn(req.Context(), "retrying rpc request",
		"rpc.host", req.URL.Host,
		"rpc.attempt", attempt,
	)
}

// headerTransport sets fixed headers on every outgoing request.
type headerTransport struct {
	headers map[string]string
	next    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	return t.next.RoundTrip(req)
}

// NewClient returns an *http.Client backed by a retrying transport.
//
// Defaults: 5s per attempt, 2 retries, backoff between 1s and 5s, no extra headers.
func NewClient(opts ...Option) *http.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RequestLogHook = logRetry
	rc.CheckRetry = retryablehttp.DefaultRetryPolicy
	rc.Backoff = retryablehttp.DefaultBackoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient.Timeout = cfg.timeout
	rc.RetryWaitMin = cfg.retryWaitMin
	rc.RetryWaitMax = cfg.retryWaitMax
	rc.RetryMax = cfg.retryMax

	if len(cfg.headers) > 0 {
		next := rc.HTTPClient.Transport
		if next == nil {
			next = http.DefaultTransport
		}
		rc.HTTPClient.Transport = &headerTransport{headers: cfg.headers, next: next}
	}

	return rc.StandardClient()
}

// WithTimeout bounds each attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the first backoff step.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax caps the backoff.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a request is retried. Zero disables retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithHeaders adds headers to every request. Later calls override earlier keys.
func WithHeaders(headers map[string]string) Option {
	return func(c *config) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}
