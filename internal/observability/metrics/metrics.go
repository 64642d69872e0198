// Package metrics provides centralized Prometheus metrics for the CMS.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance.
var (
	// HTTPRequestsTotal counts HTTP requests by method, path pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Scheduled publisher metrics.
var (
	// PublishPassesTotal counts publish-check passes by result.
	PublishPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduled_publish_passes_total",
			Help: "Total number of scheduled publish-check passes",
		},
		[]string{"result"}, // result: success, error
	)

	// ArticlesPublishedTotal counts articles promoted by the scheduled
	// publisher. Failures count separately so partial passes are visible.
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduled_articles_published_total",
			Help: "Total number of articles auto-published by the scheduler",
		},
		[]string{"result"}, // result: success, error
	)

	// PublishPassDuration measures the duration of one publish-check pass.
	PublishPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scheduled_publish_pass_duration_seconds",
			Help:    "Time taken by one scheduled publish-check pass",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
	)
)
