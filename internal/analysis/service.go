package analysis

import (
	"github.com/therealutkarshpriyadarshi/subfix/internal/subtitle"
)

// Analyze runs the full parse -> metrics -> detect pipeline over raw SRT
// text. It fails with ErrEmptyInput when no entry survives parsing and with
// ErrInsufficientData when fewer than two entries do; a partial report is
// never returned.
func Analyze(content string) (*Report, error) {
	parsed := subtitle.Parse(content)
	report, _, err := analyzeEntries(parsed)
	return report, err
}

// Fix analyzes raw SRT text, applies every suggested correction and returns
// the corrected file text alongside the report the corrections came from.
func Fix(content string) (string, *Report, error) {
	parsed := subtitle.Parse(content)
	report, entries, err := analyzeEntries(parsed)
	if err != nil {
		return "", nil, err
	}

	fixed := ApplyFixes(entries, report)
	return subtitle.Write(fixed), report, nil
}

func analyzeEntries(parsed subtitle.ParseResult) (*Report, []subtitle.Entry, error) {
	entries := parsed.Entries
	if len(entries) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(entries) < 2 {
		return nil, nil, ErrInsufficientData
	}

	gaps := Gaps(entries)
	stats := ComputeStatistics(entries, gaps)

	report := Detect(entries, gaps, stats)
	report.SkippedBlocks = parsed.Skipped
	return report, entries, nil
}
