package subtitle

import (
	"fmt"
	"strings"
)

// Write renders entries back into SRT text: index line, time-range line,
// text lines, then a blank separator line after every entry, matching the
// block layout Parse expects.
func Write(entries []Entry) string {
	var b strings.Builder

	for _, entry := range entries {
		fmt.Fprintf(&b, "%d\n", entry.Index)
		fmt.Fprintf(&b, "%s%s%s\n", FormatTimestamp(entry.Start), timeRangeSeparator, FormatTimestamp(entry.End))
		for _, line := range entry.Text {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
