package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/therealutkarshpriyadarshi/subfix/internal/analysis"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// Create a mini Redis server for testing
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	cache, err := NewCache(mr.Host(), mr.Server().Addr().Port, "", 0, 5*time.Minute)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create cache: %v", err)
	}

	return cache, mr
}

func TestNewCache(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()
	defer cache.Close()

	if cache == nil {
		t.Fatal("Cache should not be nil")
	}

	// Test ping
	ctx := context.Background()
	if err := cache.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestContentKey(t *testing.T) {
	a := ContentKey([]byte("1\n00:00:01,000 --> 00:00:02,000\nHello\n"))
	b := ContentKey([]byte("1\n00:00:01,000 --> 00:00:02,000\nHello\n"))
	c := ContentKey([]byte("1\n00:00:01,000 --> 00:00:02,500\nHello\n"))

	if a != b {
		t.Error("Identical content should produce identical keys")
	}

	if a == c {
		t.Error("Different content should produce different keys")
	}

	if len(a) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(a))
	}
}

func TestCache_ReportOperations(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()
	defer cache.Close()

	ctx := context.Background()
	key := ContentKey([]byte("test subtitle content"))

	report := &analysis.Report{
		Statistics: map[string]float64{
			analysis.StatTotalSubtitles: 4,
			analysis.StatAvgGap:         0.5,
		},
		Issues:        []string{"Found 1 overlapping subtitles"},
		SkippedBlocks: 1,
	}

	// Test SetReport
	if err := cache.SetReport(ctx, key, report); err != nil {
		t.Fatalf("SetReport failed: %v", err)
	}

	// Test GetReport
	retrieved, err := cache.GetReport(ctx, key)
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}

	if retrieved == nil {
		t.Fatal("Retrieved report should not be nil")
	}

	if retrieved.Statistics[analysis.StatTotalSubtitles] != 4 {
		t.Errorf("Expected total_subtitles 4, got %f", retrieved.Statistics[analysis.StatTotalSubtitles])
	}

	if len(retrieved.Issues) != 1 || retrieved.Issues[0] != report.Issues[0] {
		t.Errorf("Issues not preserved, got %v", retrieved.Issues)
	}

	if retrieved.SkippedBlocks != 1 {
		t.Errorf("Expected 1 skipped block, got %d", retrieved.SkippedBlocks)
	}

	// Test GetReport for non-existent key
	missing, err := cache.GetReport(ctx, "non-existent")
	if err != nil {
		t.Fatalf("GetReport for non-existent should not error: %v", err)
	}

	if missing != nil {
		t.Error("Non-existent report should return nil")
	}

	// Test DeleteReport
	if err := cache.DeleteReport(ctx, key); err != nil {
		t.Fatalf("DeleteReport failed: %v", err)
	}

	deleted, err := cache.GetReport(ctx, key)
	if err != nil {
		t.Fatalf("GetReport after delete failed: %v", err)
	}

	if deleted != nil {
		t.Error("Deleted report should return nil")
	}
}

func TestCache_ReportTTL(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()
	defer cache.Close()

	ctx := context.Background()
	key := ContentKey([]byte("expiring content"))

	report := &analysis.Report{
		Statistics: map[string]float64{analysis.StatTotalSubtitles: 2},
		Issues:     []string{},
	}

	if err := cache.SetReport(ctx, key, report); err != nil {
		t.Fatalf("SetReport failed: %v", err)
	}

	// Advance miniredis past the TTL
	mr.FastForward(6 * time.Minute)

	expired, err := cache.GetReport(ctx, key)
	if err != nil {
		t.Fatalf("GetReport after expiry failed: %v", err)
	}

	if expired != nil {
		t.Error("Expired report should return nil")
	}
}

func TestCache_StatOperations(t *testing.T) {
	cache, mr := setupTestCache(t)
	defer mr.Close()
	defer cache.Close()

	ctx := context.Background()
	stat := "files_analyzed"

	// Test IncrementStat
	if err := cache.IncrementStat(ctx, stat); err != nil {
		t.Fatalf("IncrementStat failed: %v", err)
	}

	if err := cache.IncrementStat(ctx, stat); err != nil {
		t.Fatalf("IncrementStat failed: %v", err)
	}

	// Test GetStat
	value, err := cache.GetStat(ctx, stat)
	if err != nil {
		t.Fatalf("GetStat failed: %v", err)
	}

	if value != 2 {
		t.Errorf("Expected stat value 2, got %d", value)
	}
}
