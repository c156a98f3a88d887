package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gabapcia/chainindex/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
)

// requestMetrics counts and times served requests, partitioned by route pattern.
type requestMetrics struct {
	requests  *prometheus.CounterVec
	latencies *prometheus.HistogramVec
}

func newRequestMetrics(reg prometheus.Registerer) *requestMetrics {
	m := &requestMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chainindex",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "How many API requests were served, partitioned by route and status.",
			},
			[]string{"route", "status"},
		),
		latencies: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "chainindex",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "How long API requests take to serve, partitioned by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	reg.MustRegister(m.requests, m.latencies)
	return m
}

// routeLabel returns the matched chi route pattern so that path parameters
// do not explode label cardinality. Unmatched paths share one label.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unmatched"
}

// instrument records metrics and logs every request. It must run inside the
// chi router so the route pattern is resolved once the request is served.
func (m *requestMetrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.Derive(r.Context(), "request.id", middleware.GetReqID(r.Context()))
		r = r.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := routeLabel(r)
		latency := time.Since(start)

		m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.latencies.WithLabelValues(route).Observe(latency.Seconds())

		logger.Debug(ctx, "request served",
			"http.method", r.Method,
			"http.route", route,
			"http.status", status,
			"latency", latency,
		)
	})
}

// corsMiddleware allows read requests from allowedOrigins. An empty list
// allows every origin.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodHead},
		AllowCredentials: false,
	}).Handler
}
