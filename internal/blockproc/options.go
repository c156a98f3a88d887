package blockproc

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// config holds the settings shared by the processor and the enricher.
type config struct {
	txWorkers        int                  // concurrent enrichments per block
	callTimeout      time.Duration        // deadline for each node call
	optimisticStatus bool                 // treat a missing receipt as success
	meterProvider    metric.MeterProvider // source of blockproc instruments
	tracerProvider   trace.TracerProvider // source of blockproc spans
}

// Option configures a Processor or an Enricher.
type Option func(*config)

func defaultConfig() config {
	return config{
		txWorkers:      1,
		callTimeout:    10 * time.Second,
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
}

func newConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.txWorkers < 1 {
		cfg.txWorkers = 1
	}

	return cfg
}

// WithTransactionWorkers sets how many transactions of one block are enriched
// concurrently. One keeps the node order strictly sequential.
//
// Default: 1.
func WithTransactionWorkers(n int) Option {
	return func(c *config) {
		c.txWorkers = n
	}
}

// WithCallTimeout bounds every node call. A timed out call counts as a failed fetch.
//
// Default: 10 seconds.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.callTimeout = d
	}
}

// WithOptimisticStatus records transactions whose receipt could not be fetched
// as successful instead of unknown.
//
// Default: false.
func WithOptimisticStatus(enabled bool) Option {
	return func(c *config) {
		c.optimisticStatus = enabled
	}
}

// WithMeterProvider overrides the global MeterProvider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracerProvider overrides the global TracerProvider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}
