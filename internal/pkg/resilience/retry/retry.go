// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a small interface with functional
// options for customizing retry behavior.
//
// Delays grow with exponential backoff. Errors wrapped with Permanent stop the
// loop immediately, and an OnRetry hook can observe every failed attempt.
//
// Basic usage:
//
//	r := retry.New(retry.WithAttempts(5))
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs the given function with configured retry logic.
	//
	// The context allows for cancellation and timeout control. If the context
	// is canceled or times out, the operation stops retrying and the context
	// error is returned.
	//
	// The operation should be idempotent and return nil on success. Execute
	// returns nil if the operation succeeds within the configured number of
	// attempts, otherwise the last error (or all errors, see WithLastErrorOnly).
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is called after every failed attempt that will be retried.
// attempt is zero-based.
type OnRetryFunc func(attempt uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, including the first one
	delay       time.Duration // base delay between retry attempts
	maxDelay    time.Duration // maximum delay between retry attempts
	lastErrOnly bool          // whether to return only the last error
	onRetry     OnRetryFunc   // optional observer for failed attempts
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// Permanent marks err as non-retryable. Execute returns it without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return retry.Unrecoverable(err)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Zero means retry until success or context cancellation.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// When false, errors from all attempts are combined.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback invoked after each failed attempt.
func WithOnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
