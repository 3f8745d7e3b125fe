package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTimestamp is returned when a timestamp does not follow the
// HH:MM:SS,mmm layout.
type ErrMalformedTimestamp struct {
	Value string
}

func (e *ErrMalformedTimestamp) Error() string {
	return fmt.Sprintf("malformed timestamp: %q", e.Value)
}

// ParseTimestamp converts an SRT timestamp into a duration since media start.
// The sub-second separator may be a comma or a period. Field values are not
// bounded, so hour counts above 99 parse fine.
func ParseTimestamp(s string) (time.Duration, error) {
	normalized := strings.ReplaceAll(s, ",", ".")
	fields := strings.Split(normalized, ":")
	if len(fields) != 3 {
		return 0, &ErrMalformedTimestamp{Value: s}
	}

	secFields := strings.Split(fields[2], ".")
	if len(secFields) != 2 {
		return 0, &ErrMalformedTimestamp{Value: s}
	}

	hours, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, &ErrMalformedTimestamp{Value: s}
	}
	minutes, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, &ErrMalformedTimestamp{Value: s}
	}
	seconds, err := strconv.Atoi(secFields[0])
	if err != nil {
		return 0, &ErrMalformedTimestamp{Value: s}
	}
	millis, err := strconv.Atoi(strings.TrimSpace(secFields[1]))
	if err != nil {
		return 0, &ErrMalformedTimestamp{Value: s}
	}

	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// FormatTimestamp renders a duration as HH:MM:SS,mmm. Fractions below one
// millisecond are truncated, so FormatTimestamp(ParseTimestamp(s)) == s for
// every well-formed input.
func FormatTimestamp(d time.Duration) string {
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
