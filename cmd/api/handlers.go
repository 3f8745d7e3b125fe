package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/therealutkarshpriyadarshi/subfix/internal/analysis"
	"github.com/therealutkarshpriyadarshi/subfix/internal/cache"
	"github.com/therealutkarshpriyadarshi/subfix/internal/logging"
	"github.com/therealutkarshpriyadarshi/subfix/internal/metrics"
	"github.com/therealutkarshpriyadarshi/subfix/internal/storage"
	"github.com/therealutkarshpriyadarshi/subfix/internal/tracing"
	"github.com/therealutkarshpriyadarshi/subfix/pkg/models"
)

// ReportStore persists analysis history. Satisfied by database.Repository;
// nil when persistence is disabled.
type ReportStore interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id string) (*models.Report, error)
	ListReports(ctx context.Context, limit, offset int) ([]*models.Report, error)
	Health(ctx context.Context) error
}

// API holds the handler dependencies. Every collaborator except the analysis
// core is optional: with store, cache and storage all nil the analyze and fix
// endpoints still work, only history, memoization and archival drop out.
type API struct {
	store          ReportStore
	cache          *cache.Cache
	storage        *storage.Storage
	log            *logging.Logger
	maxUploadBytes int64
}

// readSubtitleFile validates and reads the multipart upload. On failure it
// writes the error response itself and returns ok=false.
func (api *API) readSubtitleFile(c *gin.Context) (content []byte, filename string, ok bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return nil, "", false
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return nil, "", false
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".srt") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format. Only .srt files are supported"})
		return nil, "", false
	}

	if api.maxUploadBytes > 0 && file.Size > api.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return nil, "", false
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return nil, "", false
	}
	defer f.Close()

	content, err = io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return nil, "", false
	}

	return content, file.Filename, true
}

// writeAnalysisError maps core errors onto HTTP responses
func writeAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid subtitles found in file"})
	case errors.Is(err, analysis.ErrInsufficientData):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Not enough subtitles to compute statistics"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Analyze subtitle endpoint
func (api *API) analyzeSubtitle(c *gin.Context) {
	content, filename, ok := api.readSubtitleFile(c)
	if !ok {
		return
	}

	key := cache.ContentKey(content)
	if api.cache != nil {
		cached, err := api.cache.GetReport(c.Request.Context(), key)
		if err != nil {
			api.log.ErrorWithErr("Report cache lookup failed", err)
		}
		if cached != nil {
			metrics.RecordCacheAccess("report", true)
			c.JSON(http.StatusOK, cached)
			return
		}
		metrics.RecordCacheAccess("report", false)
	}

	span, ctx := tracing.StartSpan(c.Request.Context(), "subtitle.analyze")
	defer tracing.FinishSpan(span)

	start := time.Now()
	report, err := analysis.Analyze(string(content))
	duration := time.Since(start)

	if err != nil {
		tracing.LogError(span, err)
		metrics.RecordAnalysis(models.OperationAnalyze, "error", duration.Seconds())
		writeAnalysisError(c, err)
		return
	}

	totalSubtitles := int(report.Statistics[analysis.StatTotalSubtitles])
	tracing.SetTag(span, "subtitles.total", totalSubtitles)
	tracing.SetTag(span, "subtitles.issues", len(report.Issues))

	api.recordAnalysis(models.OperationAnalyze, filename, int64(len(content)), report, duration)

	if api.cache != nil {
		if err := api.cache.SetReport(ctx, key, report); err != nil {
			api.log.ErrorWithErr("Failed to cache report", err)
		}
	}

	api.saveReport(ctx, &models.Report{
		Operation:      models.OperationAnalyze,
		Filename:       filename,
		SizeBytes:      int64(len(content)),
		TotalSubtitles: totalSubtitles,
		IssueCount:     len(report.Issues),
		SkippedBlocks:  report.SkippedBlocks,
		Issues:         report.Issues,
		Statistics:     report.Statistics,
	})

	c.JSON(http.StatusOK, report)
}

// Fix subtitle endpoint
func (api *API) fixSubtitle(c *gin.Context) {
	content, filename, ok := api.readSubtitleFile(c)
	if !ok {
		return
	}

	span, ctx := tracing.StartSpan(c.Request.Context(), "subtitle.fix")
	defer tracing.FinishSpan(span)

	start := time.Now()
	fixedText, report, err := analysis.Fix(string(content))
	duration := time.Since(start)

	if err != nil {
		tracing.LogError(span, err)
		metrics.RecordAnalysis(models.OperationFix, "error", duration.Seconds())
		writeAnalysisError(c, err)
		return
	}

	totalSubtitles := int(report.Statistics[analysis.StatTotalSubtitles])
	api.recordAnalysis(models.OperationFix, filename, int64(len(content)), report, duration)

	fixes := analysis.SuggestFixes(report)
	fixKinds := make([]string, 0, len(fixes))
	for _, fix := range fixes {
		fixKinds = append(fixKinds, string(fix.Kind))
		metrics.RecordFix(string(fix.Kind))
	}

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	fixedName := stem + "_fixed.srt"

	reportID := uuid.New().String()
	objectKey := ""
	if api.storage != nil {
		objectKey = fmt.Sprintf("reports/%s/%s", reportID, fixedName)
		err := api.storage.Upload(ctx, objectKey, strings.NewReader(fixedText), int64(len(fixedText)))
		api.log.LogStorageOperation("upload", "", objectKey, int64(len(fixedText)), err)
		if err != nil {
			metrics.RecordStorageOperation("upload", "error")
			objectKey = ""
		} else {
			metrics.RecordStorageOperation("upload", "success")
		}
	}

	api.saveReport(ctx, &models.Report{
		ID:             reportID,
		Operation:      models.OperationFix,
		Filename:       filename,
		SizeBytes:      int64(len(content)),
		TotalSubtitles: totalSubtitles,
		IssueCount:     len(report.Issues),
		SkippedBlocks:  report.SkippedBlocks,
		Issues:         report.Issues,
		Statistics:     report.Statistics,
		FixKinds:       fixKinds,
		ObjectKey:      objectKey,
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fixedName))
	c.Header("X-Analysis-Total-Subtitles", strconv.Itoa(totalSubtitles))
	c.Header("X-Analysis-Issues", strconv.Itoa(len(report.Issues)))
	c.Data(http.StatusOK, "application/x-subrip", []byte(fixedText))
}

// List reports endpoint
func (api *API) listReports(c *gin.Context) {
	if api.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History storage is not configured"})
		return
	}

	limit := parseIntQuery(c, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := parseIntQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	reports, err := api.store.ListReports(c.Request.Context(), limit, offset)
	if err != nil {
		metrics.RecordDatabaseOperation("list_reports", "error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.RecordDatabaseOperation("list_reports", "success")

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"limit":   limit,
		"offset":  offset,
	})
}

// Get report endpoint
func (api *API) getReport(c *gin.Context) {
	if api.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History storage is not configured"})
		return
	}

	report, err := api.store.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Download archived fixed file endpoint
func (api *API) downloadReport(c *gin.Context) {
	if api.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History storage is not configured"})
		return
	}

	report, err := api.store.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	if report.ObjectKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No archived file for this report"})
		return
	}

	if api.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is not configured"})
		return
	}

	object, err := api.storage.Download(c.Request.Context(), report.ObjectKey)
	if err != nil {
		metrics.RecordStorageOperation("download", "error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch archived file"})
		return
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		metrics.RecordStorageOperation("download", "error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch archived file"})
		return
	}
	metrics.RecordStorageOperation("download", "success")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(report.ObjectKey)))
	c.Data(http.StatusOK, "application/x-subrip", data)
}

// Health check endpoint
func (api *API) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if api.store != nil {
		if err := api.store.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// recordAnalysis emits the metrics and log line for one successful run
func (api *API) recordAnalysis(operation, filename string, sizeBytes int64, report *analysis.Report, duration time.Duration) {
	totalSubtitles := int(report.Statistics[analysis.StatTotalSubtitles])

	metrics.RecordUpload(operation, sizeBytes)
	metrics.RecordAnalysis(operation, "success", duration.Seconds())
	metrics.RecordParse(totalSubtitles, report.SkippedBlocks)
	metrics.RecordIssues("overlap", len(report.Overlaps))
	metrics.RecordIssues("large_gap", len(report.LargeGaps))
	metrics.RecordIssues("fast_reading", len(report.FastSubs))

	api.log.LogAnalysis(operation, filename, totalSubtitles, len(report.Issues), report.SkippedBlocks, duration)
}

// saveReport records a history row. Persistence never gates the request:
// failures are logged and the response proceeds without a row.
func (api *API) saveReport(ctx context.Context, report *models.Report) {
	if api.store == nil {
		return
	}

	if err := api.store.CreateReport(ctx, report); err != nil {
		metrics.RecordDatabaseOperation("create_report", "error")
		api.log.ErrorWithErr("Failed to record analysis history", err)
		return
	}
	metrics.RecordDatabaseOperation("create_report", "success")
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
