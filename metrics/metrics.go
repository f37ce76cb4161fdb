// Package metrics exposes Prometheus collectors for the reservoir toolbox
// MCP server: tool call outcomes and latency, memo cache behaviour, worker
// pressure and the HTTP transport.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "restoolbox_mcp"

// OutcomeOK labels a tool call that returned a result. Failed calls are
// labelled with their error class.
const OutcomeOK = "ok"

func counter(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Namespace: Namespace, Name: name, Help: help}, labels)
}

func histogram(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)
}

// Tool calls
var (
	RequestsTotal   = counter("requests_total", "MCP tool calls by tool and outcome", "tool", "outcome")
	RequestDuration = histogram("request_duration_seconds", "Tool call latency", []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}, "tool")
	PanicsRecovered = counter("panics_recovered_total", "Panics recovered in tool handlers", "tool")
	PathRejections  = counter("path_rejections_total", "Simulator file paths refused outside the data directory", "tool")
	TableRows       = histogram("table_rows", "Rows produced by table-generating tools", []float64{5, 10, 25, 50, 100, 200, 500}, "tool")
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{Namespace: Namespace, Name: "requests_in_flight", Help: "Tool calls currently running"}, []string{"tool"})
)

// Memoised calculations
var (
	CacheLookups        = counter("cache_lookups_total", "Memo cache lookups by result (hit or miss)", "result")
	CacheEvictions      = promauto.NewCounter(prometheus.CounterOpts{Namespace: Namespace, Name: "cache_evictions_total", Help: "Entries evicted for capacity"})
	CacheSize           = promauto.NewGauge(prometheus.GaugeOpts{Namespace: Namespace, Name: "cache_entries", Help: "Entries in the memo cache"})
	DedupShared         = counter("dedup_shared_total", "Calculations answered from another caller's in-flight result", "calculation")
	CalculationDuration = histogram("calculation_duration_seconds", "Memoised calculation latency", prometheus.DefBuckets, "calculation")
	WorkerWaits         = promauto.NewCounter(prometheus.CounterOpts{Namespace: Namespace, Name: "worker_waits_total", Help: "Calculations that waited for a worker slot"})
)

// HTTP transport
var (
	HTTPRequestsTotal   = counter("http_requests_total", "HTTP requests by method and status", "method", "status")
	HTTPRequestDuration = histogram("http_request_duration_seconds", "HTTP request latency", []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}, "method", "path")
	RateLimitRejections = promauto.NewCounter(prometheus.CounterOpts{Namespace: Namespace, Name: "rate_limit_rejections_total", Help: "HTTP requests rejected by the rate limiter"})
)

// RecordRequest books a finished tool call. outcome is OutcomeOK or an
// error class.
func RecordRequest(tool, outcome string, seconds float64) {
	RequestsTotal.WithLabelValues(tool, outcome).Inc()
	RequestDuration.WithLabelValues(tool).Observe(seconds)
}

// RecordCalculation books a memoised calculation. Shared results are
// counted, not timed.
func RecordCalculation(name string, seconds float64, shared bool) {
	if shared {
		DedupShared.WithLabelValues(name).Inc()
		return
	}
	CalculationDuration.WithLabelValues(name).Observe(seconds)
}

// RecordCacheAccess books a memo cache lookup.
func RecordCacheAccess(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(result).Inc()
}

// SetCacheSize updates the cache entries gauge.
func SetCacheSize(size int64) {
	CacheSize.Set(float64(size))
}
