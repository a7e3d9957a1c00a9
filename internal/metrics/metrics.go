package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gametradein_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gametradein_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// UpstreamRequestCounter counts calls to the PriceCharting API by endpoint and outcome
	UpstreamRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gametradein_pricecharting_requests_total",
			Help: "Total number of PriceCharting API calls",
		},
		[]string{"endpoint", "outcome"},
	)

	// SubmissionCounter counts stored sell submissions
	SubmissionCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gametradein_submissions_total",
			Help: "Total number of stored sell submissions",
		},
	)
)
