// Package metrics provides Prometheus metrics collection for the production optimizer.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OptimizationRunsTotal tracks optimization runs by outcome.
	// The outcome label is "exact", "approximate" or "error".
	OptimizationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimization_runs_total",
			Help: "Total number of optimization runs",
		},
		[]string{"outcome"},
	)

	// OptimizationDuration tracks end-to-end optimization duration,
	// including the catalog snapshot read.
	OptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_duration_seconds",
			Help:    "Optimization run duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// OptimizationSuggestions tracks how many products each run suggests.
	OptimizationSuggestions = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "optimization_suggestions",
			Help:    "Number of products suggested per optimization run",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// CatalogSize tracks the current catalog size by collection.
	CatalogSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_size",
			Help: "Number of documents in the catalog",
		},
		[]string{"collection"},
	)

	// CacheOperations tracks result cache operations by type and outcome.
	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_operations_total",
			Help: "Total number of result cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOptimizationRun records metrics for one optimization run.
func RecordOptimizationRun(duration time.Duration, suggestions int, exact bool) {
	outcome := "exact"
	if !exact {
		outcome = "approximate"
	}
	OptimizationRunsTotal.WithLabelValues(outcome).Inc()
	OptimizationDuration.Observe(duration.Seconds())
	OptimizationSuggestions.Observe(float64(suggestions))
}

// RecordOptimizationError records a failed optimization run.
func RecordOptimizationError() {
	OptimizationRunsTotal.WithLabelValues("error").Inc()
}

// UpdateCatalogSize updates the catalog gauge for one collection.
func UpdateCatalogSize(collection string, size int) {
	CatalogSize.WithLabelValues(collection).Set(float64(size))
}

// RecordCacheOperation records a result cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperations.WithLabelValues(operation, result).Inc()
}
