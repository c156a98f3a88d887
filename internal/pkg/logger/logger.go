// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It emits JSON logs to stdout, adds an OTEL bridge
// core when a telemetry LoggerProvider is available, and supports deriving
// context-scoped loggers that carry request fields and trace identifiers.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/chainindex/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the unexported type used to store loggers in a context.
type ctxKeyType struct{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// ctxKey is the context key under which derived loggers are stored.
	ctxKey = ctxKeyType{}
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). Logs are written as JSON to stdout. If an
// OpenTelemetry LoggerProvider has been registered through the telemetry
// package, an OTEL bridge core is added so log records are also exported.
//
// Calling Init multiple times has no effect after the first successful call.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/chainindex", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// fromCtx returns the logger stored in ctx, or the base logger.
func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger); ok && l != nil {
		return l
	}

	return baseLogger
}

// deriveFromCtx returns the context logger enriched with the given key/value
// pairs and, when ctx carries a span, its trace and span identifiers.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l := fromCtx(ctx)

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		keysAndValues = append(keysAndValues, "trace_id", spanCtx.TraceID().String())
	}
	if spanCtx.HasSpanID() {
		keysAndValues = append(keysAndValues, "span_id", spanCtx.SpanID().String())
	}

	if len(keysAndValues) == 0 {
		return l
	}

	return l.With(keysAndValues...)
}

// Derive returns a child context whose logger always includes the given
// key/value pairs. Trace identifiers are resolved at log time, so spans
// started after Derive are still reflected.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, fromCtx(ctx).With(keysAndValues...))
}

// log writes msg at the given level using the context-scoped logger.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
