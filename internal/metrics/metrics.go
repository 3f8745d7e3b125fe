package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "subfix_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Upload Metrics
	SubtitleUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_subtitle_uploads_total",
			Help: "Total number of subtitle file uploads",
		},
		[]string{"operation"},
	)

	SubtitleUploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "subfix_subtitle_upload_size_bytes",
			Help:    "Size of uploaded subtitle files in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8), // 1KB to 16MB
		},
	)

	// Analysis Metrics
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_analyses_total",
			Help: "Total number of analysis runs",
		},
		[]string{"operation", "status"},
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "subfix_analysis_duration_seconds",
			Help:    "Analysis pipeline duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation"},
	)

	IssuesDetectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_issues_detected_total",
			Help: "Total number of timing issues detected",
		},
		[]string{"category"},
	)

	FixesAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_fixes_applied_total",
			Help: "Total number of fix offsets applied",
		},
		[]string{"kind"},
	)

	SkippedBlocksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subfix_skipped_blocks_total",
			Help: "Total number of malformed blocks dropped during parsing",
		},
	)

	SubtitlesProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subfix_subtitles_processed_total",
			Help: "Total number of subtitle entries processed",
		},
	)

	// Cache Metrics
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// Storage Metrics
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_storage_operations_total",
			Help: "Total number of storage operations",
		},
		[]string{"operation", "status"},
	)

	// Database Metrics
	DatabaseOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_database_operations_total",
			Help: "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subfix_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// RecordHTTPRequest records an HTTP request
func RecordHTTPRequest(method, endpoint, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordUpload records an accepted subtitle upload
func RecordUpload(operation string, sizeBytes int64) {
	SubtitleUploadsTotal.WithLabelValues(operation).Inc()
	SubtitleUploadSizeBytes.Observe(float64(sizeBytes))
}

// RecordAnalysis records one analysis run
func RecordAnalysis(operation, status string, duration float64) {
	AnalysesTotal.WithLabelValues(operation, status).Inc()
	AnalysisDuration.WithLabelValues(operation).Observe(duration)
}

// RecordIssues records detected issue counts per category
func RecordIssues(category string, count int) {
	if count > 0 {
		IssuesDetectedTotal.WithLabelValues(category).Add(float64(count))
	}
}

// RecordFix records an applied fix offset
func RecordFix(kind string) {
	FixesAppliedTotal.WithLabelValues(kind).Inc()
}

// RecordParse records parse-level counters
func RecordParse(totalSubtitles, skippedBlocks int) {
	SubtitlesProcessedTotal.Add(float64(totalSubtitles))
	SkippedBlocksTotal.Add(float64(skippedBlocks))
}

// RecordCacheAccess records cache hit or miss
func RecordCacheAccess(cacheType string, hit bool) {
	if hit {
		CacheHitsTotal.WithLabelValues(cacheType).Inc()
	} else {
		CacheMissesTotal.WithLabelValues(cacheType).Inc()
	}
}

// RecordStorageOperation records a storage operation
func RecordStorageOperation(operation, status string) {
	StorageOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordDatabaseOperation records a database operation
func RecordDatabaseOperation(operation, status string) {
	DatabaseOperationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
