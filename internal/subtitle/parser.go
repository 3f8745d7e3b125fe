package subtitle

import (
	"strconv"
	"strings"
	"time"
)

const timeRangeSeparator = " --> "

// noTime marks an entry whose time-range line has not been seen yet. A real
// start of 00:00:00,000 is valid, so the sentinel has to be negative.
const noTime = time.Duration(-1)

// ParseResult carries the entries recovered from a file plus a count of the
// blocks the parser had to throw away. Skipped blocks never abort the parse;
// the count exists so callers can report how lossy the recovery was.
type ParseResult struct {
	Entries []Entry
	Skipped int
}

// Parse reads SRT content into an ordered entry sequence. Blocks are
// separated by blank lines; each block is an index line, a time-range line
// and one or more text lines. Recovery is per block: a line that fails to
// parse as an index is skipped, and a block whose time range does not parse
// is discarded entirely while the parser resyncs on the next index line.
//
// An input that yields no entries is a valid empty result, not an error.
func Parse(content string) ParseResult {
	var result ParseResult
	var current *Entry

	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(strings.TrimSpace(content), "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if line == "" {
			if current != nil {
				result.close(current)
				current = nil
			}
			continue
		}

		if current == nil {
			index, err := strconv.Atoi(line)
			if err != nil {
				result.Skipped++
				continue
			}
			current = &Entry{Index: index, Start: noTime, End: noTime}
			continue
		}

		if current.Start == noTime {
			start, end, ok := parseTimeRange(line)
			if !ok {
				// Bad time range invalidates the whole block.
				current = nil
				result.Skipped++
				continue
			}
			current.Start = start
			current.End = end
			continue
		}

		current.Text = append(current.Text, line)
	}

	// Trailing block without a terminating blank line.
	if current != nil {
		result.close(current)
	}

	return result
}

// close finishes a block. A block that never got a time-range line (an index
// followed directly by a blank line) is counted as skipped, not emitted.
func (r *ParseResult) close(entry *Entry) {
	if entry.Start == noTime {
		r.Skipped++
		return
	}
	r.Entries = append(r.Entries, *entry)
}

func parseTimeRange(line string) (start, end time.Duration, ok bool) {
	parts := strings.Split(line, timeRangeSeparator)
	if len(parts) != 2 {
		return noTime, noTime, false
	}

	s, err := ParseTimestamp(parts[0])
	if err != nil {
		return noTime, noTime, false
	}
	e, err := ParseTimestamp(parts[1])
	if err != nil {
		return noTime, noTime, false
	}
	return s, e, true
}
