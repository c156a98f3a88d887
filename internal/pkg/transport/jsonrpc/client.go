// Package jsonrpc is a minimal JSON-RPC 2.0 client for node endpoints.
// Calls are single (non-batched) requests, optionally paced by a client-side
// rate limit.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"go.uber.org/ratelimit"
)

var (
	// ErrProviderReturnedError matches every *Error returned by Fetch.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus means the endpoint answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrMismatchedID means the response id does not echo the request id.
	ErrMismatchedID = errors.New("mismatched response id")
)

// Error is the error object of a JSON-RPC response.
type Error struct {
	Method  string          `json:"-"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s [%d] - %s", ErrProviderReturnedError, e.Method, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return ErrProviderReturnedError
}

// IsNull reports whether a raw result is absent or the JSON literal null.
// Nodes answer lookups for unknown blocks and receipts with a null result.
func IsNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Client performs JSON-RPC calls.
type Client interface {
	// Fetch calls method with positional params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Error   *Error          `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// matches accepts the id as a number or a numeric string, since some
// providers echo ids back quoted.
func (r response) matches(id uint64) bool {
	raw := bytes.TrimSpace(r.ID)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		// Some gateways drop the id on error responses.
		return r.Error != nil
	}

	raw = bytes.Trim(raw, `"`)
	got, err := strconv.ParseUint(string(raw), 10, 64)
	return err == nil && got == id
}

type client struct {
	endpoint   string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	lastID     atomic.Uint64
}

var _ Client = (*client)(nil)

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	id := c.lastID.Add(1)
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Take cannot be interrupted, so a call already done skips the limiter.
	// A call canceled while waiting still blocks for up to one token interval
	// per queued caller, then returns without sending.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d calling %s", ErrUnexpectedStatus, res.StatusCode, method)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}

	if !data.matches(id) {
		return nil, fmt.Errorf("%w: %s sent %d, got %s", ErrMismatchedID, method, id, data.ID)
	}

	if data.Error != nil {
		data.Error.Method = method
		return nil, data.Error
	}

	return data.Result, nil
}

type config struct {
	requestsPerSecond int
}

// Option configures the client.
type Option func(*config)

// WithRateLimit caps requests per second sent to the endpoint. Zero or less
// disables throttling, which is the default.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *config) {
		c.requestsPerSecond = requestsPerSecond
	}
}

// NewClient returns a Client posting to endpoint through httpClient.
func NewClient(httpClient *http.Client, endpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.requestsPerSecond > 0 {
		limiter = ratelimit.New(cfg.requestsPerSecond)
	}

	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
		limiter:    limiter,
	}
}
