// Package metrics holds the Prometheus collectors for the cookbook service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Summary outcomes.
const (
	OutcomeOK                = "ok"
	OutcomeNotFound          = "not_found"
	OutcomeNotARecipe        = "not_a_recipe"
	OutcomeMissingDependency = "missing_dependency"
	OutcomeCyclicDependency  = "cyclic_dependency"
	OutcomeOutOfRange        = "out_of_range"
	OutcomeError             = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cookbook_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cookbook_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	// EntriesCreated counts successful inserts by entry type.
	EntriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_created_total",
			Help: "Total number of entries added to the cookbook",
		},
		[]string{"type"},
	)

	// EntriesRejected counts rejected inserts by reason.
	EntriesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_rejected_total",
			Help: "Total number of entry inserts rejected",
		},
		[]string{"reason"},
	)

	// Summaries counts summary computations by outcome.
	Summaries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_summaries_total",
			Help: "Total number of recipe summaries computed",
		},
		[]string{"outcome"},
	)

	// RateLimitRejects counts requests turned away by the rate limiter.
	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)
)

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count, latency and in-flight requests. The route
// label is the matched chi pattern so path parameters do not explode
// cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
