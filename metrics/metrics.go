// Package metrics provides Prometheus metrics for the WordPress MCP server.
// It tracks request counts, latencies, upload sizes, and error rates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wordpress_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// APILatency measures WordPress API call latency by resource and action
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "WordPress API call latency by resource and action",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource", "action"})

	// APIRequestsTotal counts WordPress API requests
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total WordPress API requests by resource, action and status",
	}, []string{"resource", "action", "status"})

	// APIErrors counts WordPress API errors by error code
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "WordPress API errors by resource, action and error code",
	}, []string{"resource", "action", "error_code"})

	// AuthFailures counts authentication and permission failures
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "auth_failures_total",
		Help:      "Authentication and permission failure count by tool",
	}, []string{"tool"})

	// RateLimitHits counts rate-limit responses from the WordPress API
	RateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_hits_total",
		Help:      "Rate-limit responses from the WordPress API by tool",
	}, []string{"tool"})

	// UploadSize tracks uploaded file sizes
	UploadSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upload_size_bytes",
		Help:      "Uploaded file size distribution in bytes",
		Buckets:   []float64{1024, 10240, 102400, 1048576, 5242880, 10485760, 26214400, 52428800},
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a WordPress API call
func RecordAPICall(resource, action string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(resource, action, status).Inc()
	APILatency.WithLabelValues(resource, action).Observe(duration)
	if errorCode != "" {
		APIErrors.WithLabelValues(resource, action, errorCode).Inc()
	}
}

// RecordUpload records the size of an uploaded file
func RecordUpload(sizeBytes int64) {
	UploadSize.Observe(float64(sizeBytes))
}
