package models

import "time"

// Report operations
const (
	OperationAnalyze = "analyze"
	OperationFix     = "fix"
)

// Report is one stored analysis run: what file came in, what the analyzer
// found, and (for fix runs) which corrections were applied and where the
// corrected file was archived.
type Report struct {
	ID             string             `json:"id"`
	Operation      string             `json:"operation"`
	Filename       string             `json:"filename"`
	SizeBytes      int64              `json:"size_bytes"`
	TotalSubtitles int                `json:"total_subtitles"`
	IssueCount     int                `json:"issue_count"`
	SkippedBlocks  int                `json:"skipped_blocks"`
	Issues         []string           `json:"issues"`
	Statistics     map[string]float64 `json:"statistics"`
	FixKinds       []string           `json:"fix_kinds,omitempty"`
	ObjectKey      string             `json:"object_key,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}
