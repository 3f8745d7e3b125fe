package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/v1/subtitles/analyze", "200", 0.012)

	counter := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/subtitles/analyze", "200"))
	if counter != 1.0 {
		t.Errorf("Expected counter to be 1.0, got %f", counter)
	}
}

func TestRecordAnalysis(t *testing.T) {
	AnalysesTotal.Reset()

	RecordAnalysis("analyze", "success", 0.004)
	RecordAnalysis("analyze", "success", 0.006)
	RecordAnalysis("fix", "error", 0.001)

	success := testutil.ToFloat64(AnalysesTotal.WithLabelValues("analyze", "success"))
	if success != 2.0 {
		t.Errorf("Expected analyze success counter to be 2.0, got %f", success)
	}

	failed := testutil.ToFloat64(AnalysesTotal.WithLabelValues("fix", "error"))
	if failed != 1.0 {
		t.Errorf("Expected fix error counter to be 1.0, got %f", failed)
	}
}

func TestRecordIssues(t *testing.T) {
	IssuesDetectedTotal.Reset()

	RecordIssues("overlap", 3)
	RecordIssues("large_gap", 0)
	RecordIssues("fast_reading", 1)

	overlaps := testutil.ToFloat64(IssuesDetectedTotal.WithLabelValues("overlap"))
	if overlaps != 3.0 {
		t.Errorf("Expected overlap counter to be 3.0, got %f", overlaps)
	}

	fast := testutil.ToFloat64(IssuesDetectedTotal.WithLabelValues("fast_reading"))
	if fast != 1.0 {
		t.Errorf("Expected fast_reading counter to be 1.0, got %f", fast)
	}
}

func TestRecordFix(t *testing.T) {
	FixesAppliedTotal.Reset()

	RecordFix("fix_overlaps")
	RecordFix("delay_start")
	RecordFix("fix_overlaps")

	overlaps := testutil.ToFloat64(FixesAppliedTotal.WithLabelValues("fix_overlaps"))
	if overlaps != 2.0 {
		t.Errorf("Expected fix_overlaps counter to be 2.0, got %f", overlaps)
	}
}

func TestRecordCacheAccess(t *testing.T) {
	CacheHitsTotal.Reset()
	CacheMissesTotal.Reset()

	RecordCacheAccess("report", true)
	RecordCacheAccess("report", false)
	RecordCacheAccess("report", true)

	hits := testutil.ToFloat64(CacheHitsTotal.WithLabelValues("report"))
	if hits != 2.0 {
		t.Errorf("Expected hits to be 2.0, got %f", hits)
	}

	misses := testutil.ToFloat64(CacheMissesTotal.WithLabelValues("report"))
	if misses != 1.0 {
		t.Errorf("Expected misses to be 1.0, got %f", misses)
	}
}
