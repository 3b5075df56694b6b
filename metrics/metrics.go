// Package metrics provides Prometheus metrics collection for the treatment
// finder API. Besides the usual HTTP request metrics it tracks the pipeline's
// interaction with the external search provider and how often the extraction
// layers fall back to their deterministic defaults.
//
// All metrics are registered with the Prometheus default registry during
// package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of per-client rate limiter buckets",
		},
	)

	SearchRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Queries issued to the external search provider",
		},
	)

	SearchRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "search_retries_total",
			Help: "Retries after a throttling response from the search provider",
		},
	)

	SearchErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "search_errors_total",
			Help: "Search calls that degraded to an error-description line",
		},
	)

	PriceDefaultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_extraction_defaults_total",
			Help: "Price extractions that returned a mode-specific default range",
		},
	)

	AggregatorFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregator_fallbacks_total",
			Help: "Conditions resolved through the hard fallback pair",
		},
	)

	AnalysesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Treatment analyses served",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchRetriesTotal)
	prometheus.MustRegister(SearchErrorsTotal)
	prometheus.MustRegister(PriceDefaultsTotal)
	prometheus.MustRegister(AggregatorFallbacksTotal)
	prometheus.MustRegister(AnalysesTotal)
}
