// Package telemetry wires OpenTelemetry traces, metrics and logs to OTLP/gRPC
// exporters. Exporter endpoints come from the standard OTEL_EXPORTER_OTLP_*
// environment variables.
package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// NetworkKey tags every exported signal with the indexed chain.
const NetworkKey = attribute.Key("chain.network")

var (
	loggerProvider otellog.LoggerProvider
	loggerMu       sync.RWMutex
)

// LoggerProvider returns the provider registered by Init, or nil before Init.
// The logger package bridges zap records through it.
func LoggerProvider() otellog.LoggerProvider {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return loggerProvider
}

func setLoggerProvider(lp otellog.LoggerProvider) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	loggerProvider = lp
}

type config struct {
	serviceVersion string
	network        string
	sampleRatio    float64
}

// Option configures Init.
type Option func(*config)

// WithServiceVersion sets service.version on the resource.
func WithServiceVersion(version string) Option {
	return func(c *config) {
		c.serviceVersion = version
	}
}

// WithNetwork sets chain.network on the resource.
func WithNetwork(network string) Option {
	return func(c *config) {
		c.network = network
	}
}

// WithSampleRatio sets the fraction of root traces kept, in [0, 1].
// Child spans follow their parent's decision. Default: 1.
func WithSampleRatio(ratio float64) Option {
	return func(c *config) {
		c.sampleRatio = ratio
	}
}

func newResource(serviceName string, cfg config) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if cfg.serviceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.serviceVersion))
	}
	if cfg.network != "" {
		attrs = append(attrs, NetworkKey.String(cfg.network))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

// ShutdownFunc flushes and stops every provider started by Init.
type ShutdownFunc func(ctx context.Context) error

// Init registers global trace and metric providers, a W3C propagator and the
// log provider returned by LoggerProvider. Call it before logger.Init.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	cfg := config{sampleRatio: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName, cfg)
	if err != nil {
		return nil, err
	}

	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		errs := make([]error, 0, len(shutdowns))
		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}
		return errors.Join(errs...)
	}

	metricExporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	shutdowns = append(shutdowns, mp.Shutdown)

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.sampleRatio))),
	)
	shutdowns = append(shutdowns, tp.Shutdown)

	logExporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)
	shutdowns = append(shutdowns, lp.Shutdown)

	otel.SetMeterProvider(mp)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	setLoggerProvider(lp)

	return shutdown, nil
}
