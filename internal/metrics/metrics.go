// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Repository listing
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_aggregations_total",
			Help: "Repository aggregations against the GitHub API by outcome",
		},
		[]string{"outcome"},
	)

	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portfolio_aggregation_duration_seconds",
			Help:    "Duration of a full repository aggregation including README classification",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
	)

	RepoListingsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_repo_listings_served_total",
			Help: "Repository listings served by source",
		},
		[]string{"source"},
	)

	RepoClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_repo_classifications_total",
			Help: "README classifications by resulting status",
		},
		[]string{"status"},
	)

	// Contact relay
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by delivery mode and outcome",
		},
		[]string{"mode", "outcome"},
	)
)
