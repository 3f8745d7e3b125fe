package analysis

import "errors"

var (
	// ErrEmptyInput means parsing produced zero usable entries.
	ErrEmptyInput = errors.New("no valid subtitles found")

	// ErrInsufficientData means the file has fewer than two entries, so the
	// spread statistics the detector relies on are undefined.
	ErrInsufficientData = errors.New("not enough subtitles to compute statistics")
)
