package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therealutkarshpriyadarshi/subfix/internal/subtitle"
)

const twoEntrySRT = `1
00:00:01,000 --> 00:00:03,000
Hi

2
00:00:03,500 --> 00:00:05,000
Bye
`

func TestAnalyze_EmptyInput(t *testing.T) {
	_, err := Analyze("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyze_GarbageOnly(t *testing.T) {
	_, err := Analyze("this is not\nan srt file at all\n")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyze_SingleEntry(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:03,000\nHi\n"

	_, err := Analyze(content)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestAnalyze_TwoEntryFile(t *testing.T) {
	report, err := Analyze(twoEntrySRT)
	require.NoError(t, err)

	assert.Empty(t, report.Issues)
	assert.Equal(t, 2.0, report.Statistics[StatTotalSubtitles])
	assert.Equal(t, 0.5, report.Statistics[StatAvgGap])
	assert.Equal(t, 0, report.SkippedBlocks)
}

func TestAnalyze_ReportsSkippedBlocks(t *testing.T) {
	content := `1
bad time line
lost text

2
00:00:01,000 --> 00:00:03,000
Hi

3
00:00:03,500 --> 00:00:05,000
Bye
`

	report, err := Analyze(content)
	require.NoError(t, err)

	assert.Equal(t, 2, report.SkippedBlocks)
	assert.Equal(t, 2.0, report.Statistics[StatTotalSubtitles])
}

func TestFix_EarlyStart(t *testing.T) {
	content := `1
00:00:00,200 --> 00:00:02,000
Hi

2
00:00:02,500 --> 00:00:04,000
Bye
`

	fixedText, report, err := Fix(content)
	require.NoError(t, err)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "appears very early")

	fixed := subtitle.Parse(fixedText)
	require.Len(t, fixed.Entries, 2)
	assert.Equal(t, "00:00:01,200", subtitle.FormatTimestamp(fixed.Entries[0].Start))
	assert.Equal(t, "00:00:03,000", subtitle.FormatTimestamp(fixed.Entries[0].End))
}

func TestFix_LateStart(t *testing.T) {
	content := `1
00:00:15,000 --> 00:00:17,000
Hi

2
00:00:17,500 --> 00:00:19,000
Bye
`

	fixedText, _, err := Fix(content)
	require.NoError(t, err)

	fixed := subtitle.Parse(fixedText)
	assert.Equal(t, "00:00:13,000", subtitle.FormatTimestamp(fixed.Entries[0].Start))
}

func TestFix_CleanFileUnchangedTimes(t *testing.T) {
	fixedText, report, err := Fix(twoEntrySRT)
	require.NoError(t, err)
	assert.Empty(t, report.Issues)

	original := subtitle.Parse(twoEntrySRT)
	fixed := subtitle.Parse(fixedText)
	assert.Equal(t, original.Entries, fixed.Entries)
}

func TestFix_EmptyInput(t *testing.T) {
	_, _, err := Fix("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFix_OutputReparses(t *testing.T) {
	fixedText, _, err := Fix(twoEntrySRT)
	require.NoError(t, err)

	reparsed := subtitle.Parse(fixedText)
	assert.Len(t, reparsed.Entries, 2)
	assert.Equal(t, 0, reparsed.Skipped)
	assert.True(t, strings.HasSuffix(fixedText, "\n"))
}
