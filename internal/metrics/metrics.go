// Package metrics exposes Prometheus counters and histograms for the
// verification service. All collectors are registered on the default
// registry and served from the API server's /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "verifications_total",
		Help: "Total number of verification calls by recorded outcome",
	}, []string{"outcome"})

	VerificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "verification_duration_seconds",
		Help:    "Latency of verification calls including ledger and store reads",
		Buckets: prometheus.DefBuckets,
	})

	ScanEventsAppendedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scan_events_appended_total",
		Help: "Total number of scan events appended to the log",
	}, []string{"source"})

	ProductsRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_registered_total",
		Help: "Total number of products minted through the registration endpoint",
	})

	TransfersStartedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transfers_started_total",
		Help: "Total number of transfer workflows started",
	})

	RegistryEventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registry_events_published_total",
		Help: "Total number of registry events published to JetStream",
	}, []string{"event_type"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
