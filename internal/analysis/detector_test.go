package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therealutkarshpriyadarshi/subfix/internal/subtitle"
)

func analyzeFixture(t *testing.T, entries []subtitle.Entry) *Report {
	t.Helper()
	gaps := Gaps(entries)
	stats := ComputeStatistics(entries, gaps)
	return Detect(entries, gaps, stats)
}

func TestDetect_CleanTwoEntryFile(t *testing.T) {
	entries := []subtitle.Entry{
		entry(1, time.Second, 3*time.Second, "Hi"),
		entry(2, 3*time.Second+500*time.Millisecond, 5*time.Second, "Bye"),
	}

	report := analyzeFixture(t, entries)

	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Overlaps)
	assert.Empty(t, report.LargeGaps)
	assert.Empty(t, report.FastSubs)
	require.Len(t, report.Gaps, 1)
	assert.Equal(t, 0.5, report.Gaps[0])
}

func TestDetect_Overlap(t *testing.T) {
	entries := []subtitle.Entry{
		entry(1, time.Second, 5*time.Second, "Hi"),
		entry(2, 4*time.Second+500*time.Millisecond, 6*time.Second, "Bye"),
	}

	report := analyzeFixture(t, entries)

	require.Len(t, report.Overlaps, 1)
	assert.Equal(t, 0, report.Overlaps[0])
	assert.Equal(t, -0.5, report.Gaps[0])
	assert.Contains(t, report.Issues, "Found 1 overlapping subtitles")
}

func TestDetect_LargeGap(t *testing.T) {
	// Ten uniform 0.5s gaps, then a 10s one: the outlier clears the
	// mean+2*stdev threshold only because the baseline is tight.
	var entries []subtitle.Entry
	start := time.Second
	for i := 0; i < 11; i++ {
		entries = append(entries, entry(i+1, start, start+2*time.Second, "Hello there"))
		start += 2*time.Second + 500*time.Millisecond
	}
	entries = append(entries, entry(12, start+10*time.Second-500*time.Millisecond,
		start+12*time.Second, "Hello there"))

	report := analyzeFixture(t, entries)

	require.Len(t, report.LargeGaps, 1)
	assert.Equal(t, 10, report.LargeGaps[0])
	assert.Contains(t, report.Issues, "Found 1 unusually large gaps")
	assert.Empty(t, report.Overlaps)
}

func TestDetect_FastReadingSpeed(t *testing.T) {
	// Uniform 5.5 cps entries plus one cramming the same text into 200ms.
	var entries []subtitle.Entry
	start := time.Second
	for i := 0; i < 11; i++ {
		entries = append(entries, entry(i+1, start, start+2*time.Second, "Hello there"))
		start += 2*time.Second + 500*time.Millisecond
	}
	entries = append(entries, entry(12, start, start+200*time.Millisecond, "Hello there"))

	report := analyzeFixture(t, entries)

	require.Len(t, report.FastSubs, 1)
	assert.Equal(t, 11, report.FastSubs[0])
	assert.Contains(t, report.Issues, "Found 1 subtitles with very high reading speeds")
}

func TestDetect_FirstEntryVeryEarly(t *testing.T) {
	entries := []subtitle.Entry{
		entry(1, 200*time.Millisecond, 2*time.Second, "Hi"),
		entry(2, 2*time.Second+500*time.Millisecond, 4*time.Second, "Bye"),
	}

	report := analyzeFixture(t, entries)

	assert.Contains(t, report.Issues, "First subtitle appears very early (0.2s)")
}

func TestDetect_FirstEntryLate(t *testing.T) {
	entries := []subtitle.Entry{
		entry(1, 15*time.Second, 17*time.Second, "Hi"),
		entry(2, 17*time.Second+500*time.Millisecond, 19*time.Second, "Bye"),
	}

	report := analyzeFixture(t, entries)

	assert.Contains(t, report.Issues, "First subtitle appears late (15.0s)")
}

func TestDetect_IssueOrder(t *testing.T) {
	// Overlapping pair that also starts too early; overlap finding must come
	// before the first-entry timing finding.
	entries := []subtitle.Entry{
		entry(1, 200*time.Millisecond, 3*time.Second, "Hi"),
		entry(2, 2*time.Second+500*time.Millisecond, 4*time.Second, "Bye"),
	}

	report := analyzeFixture(t, entries)

	require.Len(t, report.Issues, 2)
	assert.Equal(t, "Found 1 overlapping subtitles", report.Issues[0])
	assert.Equal(t, "First subtitle appears very early (0.2s)", report.Issues[1])
}

func TestDetect_EarlyAndLateMutuallyExclusive(t *testing.T) {
	for _, startSeconds := range []float64{1.0, 5.0, 9.9} {
		start := time.Duration(startSeconds * float64(time.Second))
		entries := []subtitle.Entry{
			entry(1, start, start+2*time.Second, "Hi"),
			entry(2, start+3*time.Second, start+5*time.Second, "Bye"),
		}

		report := analyzeFixture(t, entries)

		for _, issue := range report.Issues {
			assert.NotContains(t, issue, "appears", fmt.Sprintf("start %.1fs", startSeconds))
		}
	}
}
