// Package telemetry exposes the service's Prometheus collectors.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifetrack_http_requests_total",
		Help: "Total HTTP requests handled.",
	}, []string{"path", "method", "status"})

	// HTTPRequestDuration observes per-route request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lifetrack_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// AICallsTotal counts upstream language-model calls by kind and outcome.
	AICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifetrack_ai_calls_total",
		Help: "Gemini calls by kind (insight, chat) and outcome (ok, error).",
	}, []string{"kind", "outcome"})
)
