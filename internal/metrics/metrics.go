// Package metrics instruments the backend HTTP client with Prometheus
// counters and, when enabled, serves them on a local debug listener.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_compass_requests_total",
			Help: "Backend API requests by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "budget_compass_request_duration_seconds",
			Help:    "Backend API request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// InstrumentedClient wraps an http.Client so every backend round trip is
// counted and timed. Pass the result to api.WithHTTPClient.
func InstrumentedClient(base *http.Client) *http.Client {
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout: base.Timeout,
		Transport: promhttp.InstrumentRoundTripperCounter(requestsTotal,
			promhttp.InstrumentRoundTripperDuration(requestDuration, transport)),
	}
}

// Serve exposes /metrics on addr in a background goroutine. Errors are
// logged, not fatal: metrics are a debugging aid, the client works without
// them.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		slog.Info("Metrics listener starting", "address", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Warn("Metrics listener stopped", "error", err)
		}
	}()
}
