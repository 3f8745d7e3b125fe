package analysis

import (
	"fmt"

	"github.com/therealutkarshpriyadarshi/subfix/internal/subtitle"
)

// Outlier threshold: mean plus two sample standard deviations.
const outlierSigma = 2.0

// First-entry timing bounds in seconds. A first cue before the lower bound
// usually means the file is shifted early; one after the upper bound means
// the file starts late. The two flags are mutually exclusive.
const (
	earlyStartSeconds = 0.5
	lateStartSeconds  = 10.0
)

// Report bundles everything one analysis run produces: the aggregate
// statistics, the human-readable findings, and the raw outlier index lists
// the fix engine consumes. Index lists refer to positions in the analyzed
// entry sequence, not to the file's own index numbers.
type Report struct {
	Statistics map[string]float64 `json:"statistics"`
	Issues     []string           `json:"issues"`

	Gaps      []float64 `json:"-"`
	Overlaps  []int     `json:"-"`
	LargeGaps []int     `json:"-"`
	FastSubs  []int     `json:"-"`

	// SkippedBlocks counts malformed blocks the parser dropped on the way in.
	SkippedBlocks int `json:"skipped_blocks"`
}

// Detect classifies entries against the statistics bundle. Issue order is
// fixed: overlaps, large gaps, fast subs, then first-entry timing.
func Detect(entries []subtitle.Entry, gaps []float64, stats map[string]float64) *Report {
	report := &Report{
		Statistics: stats,
		Issues:     []string{},
		Gaps:       gaps,
	}

	for i, gap := range gaps {
		if gap < 0 {
			report.Overlaps = append(report.Overlaps, i)
		}
	}
	if len(report.Overlaps) > 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Found %d overlapping subtitles", len(report.Overlaps)))
	}

	gapThreshold := stats[StatAvgGap] + outlierSigma*stats[StatStdGap]
	for i, gap := range gaps {
		if gap > gapThreshold {
			report.LargeGaps = append(report.LargeGaps, i)
		}
	}
	if len(report.LargeGaps) > 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Found %d unusually large gaps", len(report.LargeGaps)))
	}

	speedThreshold := stats[StatAvgReadingSpeed] + outlierSigma*stats[StatStdReadingSpeed]
	for i := range entries {
		if entries[i].ReadingSpeed() > speedThreshold {
			report.FastSubs = append(report.FastSubs, i)
		}
	}
	if len(report.FastSubs) > 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Found %d subtitles with very high reading speeds", len(report.FastSubs)))
	}

	firstStart := entries[0].Start.Seconds()
	if firstStart < earlyStartSeconds {
		report.Issues = append(report.Issues,
			fmt.Sprintf("First subtitle appears very early (%.1fs)", firstStart))
	} else if firstStart > lateStartSeconds {
		report.Issues = append(report.Issues,
			fmt.Sprintf("First subtitle appears late (%.1fs)", firstStart))
	}

	return report
}
