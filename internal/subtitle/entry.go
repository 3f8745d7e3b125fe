package subtitle

import "time"

// Entry represents a single subtitle cue: an index, a display window and
// one or more lines of text. The index is carried verbatim from the source
// file and is only used when writing the file back out; ordering always
// follows slice position.
type Entry struct {
	Index int           `json:"index"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	Text  []string      `json:"text"`
}

// Duration returns the display duration in seconds.
func (e *Entry) Duration() float64 {
	return (e.End - e.Start).Seconds()
}

// CharCount returns the total number of characters across all text lines,
// excluding line breaks.
func (e *Entry) CharCount() int {
	count := 0
	for _, line := range e.Text {
		count += len(line)
	}
	return count
}

// ReadingSpeed returns characters per second of display time, or 0 when the
// cue has no positive duration.
func (e *Entry) ReadingSpeed() float64 {
	d := e.Duration()
	if d <= 0 {
		return 0
	}
	return float64(e.CharCount()) / d
}

// Shift moves both timestamps by the given offset. Negative offsets move the
// cue earlier; timestamps are not clamped at zero.
func (e *Entry) Shift(offset time.Duration) {
	e.Start += offset
	e.End += offset
}
