package analysis

import (
	"math"
	"strings"
	"time"

	"github.com/therealutkarshpriyadarshi/subfix/internal/subtitle"
)

// FixKind identifies one of the heuristic time-shift rules.
type FixKind string

const (
	FixOverlaps  FixKind = "fix_overlaps"
	DelayStart   FixKind = "delay_start"
	AdvanceStart FixKind = "advance_start"
)

// Heuristic shift constants. The overlap correction is sized at 110% of the
// worst overlap so the shift clears the collision with some margin; the
// start-time nudges are fixed amounts. Kept bit-for-bit stable because
// downstream consumers compare fixed files across runs.
const (
	overlapMarginFactor = 1100 // milliseconds per second of worst overlap
	delayStartMS        = 1000
	advanceStartMS      = -2000
)

// FixSuggestion is a single suggested correction: a global millisecond offset applied
// to every cue in the file.
type FixSuggestion struct {
	Kind     FixKind `json:"kind"`
	OffsetMS int     `json:"offset_ms"`
}

// SuggestFixes maps a report's findings onto an ordered list of global
// offsets. Only overlaps and the first-entry timing flags produce fixes;
// large gaps and fast subs are reported but not corrected.
func SuggestFixes(report *Report) []FixSuggestion {
	var fixes []FixSuggestion

	if len(report.Overlaps) > 0 {
		worst := 0.0
		for _, i := range report.Overlaps {
			if report.Gaps[i] < worst {
				worst = report.Gaps[i]
			}
		}
		fixes = append(fixes, FixSuggestion{
			Kind:     FixOverlaps,
			OffsetMS: int(math.Round(-worst * overlapMarginFactor)),
		})
	}

	for _, issue := range report.Issues {
		if strings.Contains(issue, "appears very early") {
			fixes = append(fixes, FixSuggestion{Kind: DelayStart, OffsetMS: delayStartMS})
		} else if strings.Contains(issue, "appears late") {
			fixes = append(fixes, FixSuggestion{Kind: AdvanceStart, OffsetMS: advanceStartMS})
		}
	}

	return fixes
}

// ApplyFixes shifts the whole timeline by each suggested offset in order and
// returns a fresh entry sequence; the caller's slice is left untouched.
// Offsets compose additively and apply to every cue, not only the flagged
// ones, which corrects the detected condition only when it dominates the
// file. A per-entry correction is a known possible improvement.
func ApplyFixes(entries []subtitle.Entry, report *Report) []subtitle.Entry {
	fixed := make([]subtitle.Entry, len(entries))
	copy(fixed, entries)

	for _, fix := range SuggestFixes(report) {
		offset := time.Duration(fix.OffsetMS) * time.Millisecond
		for i := range fixed {
			fixed[i].Shift(offset)
		}
	}

	return fixed
}
