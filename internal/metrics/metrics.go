// Package metrics exposes Prometheus instrumentation for the HTTP
// surface and the policy pipeline.
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

var (
	policiesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "compligenie_policies_generated_total",
		Help: "Policies generated, labelled by industry.",
	}, []string{"industry"})

	partnerPayouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compligenie_partner_payouts_total",
		Help: "Completed partner payouts.",
	})

	payoutCents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compligenie_partner_payout_cents_total",
		Help: "Total cents paid out to partners.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "compligenie_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "compligenie_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// PolicyGenerated records one successful generation.
func PolicyGenerated(industry string) {
	policiesGenerated.WithLabelValues(industry).Inc()
}

// PayoutCompleted records one completed partner payout.
func PayoutCompleted(amountCents int64) {
	partnerPayouts.Inc()
	payoutCents.Add(float64(amountCents))
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instruments every request with a counter and a latency
// histogram. Route patterns come from chi so label cardinality stays
// bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
