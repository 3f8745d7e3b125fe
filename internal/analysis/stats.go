package analysis

import (
	"math"

	"github.com/therealutkarshpriyadarshi/subfix/internal/subtitle"
)

// Statistic keys exposed in the report.
const (
	StatAvgReadingSpeed = "avg_reading_speed"
	StatStdReadingSpeed = "std_reading_speed"
	StatAvgGap          = "avg_gap"
	StatStdGap          = "std_gap"
	StatAvgDuration     = "avg_duration"
	StatStdDuration     = "std_duration"
	StatTotalSubtitles  = "total_subtitles"
)

// Gaps returns the signed gap in seconds between each entry's end and the
// next entry's start. The vector has len(entries)-1 elements; the last entry
// has no successor and therefore no gap. A negative value means the two cues
// overlap on screen.
func Gaps(entries []subtitle.Entry) []float64 {
	if len(entries) < 2 {
		return nil
	}

	gaps := make([]float64, len(entries)-1)
	for i := 0; i < len(entries)-1; i++ {
		gaps[i] = (entries[i+1].Start - entries[i].End).Seconds()
	}
	return gaps
}

// ComputeStatistics aggregates mean and sample standard deviation over the
// reading-speed, gap and duration vectors. Callers must guarantee at least
// two entries; the service layer enforces that with ErrInsufficientData.
func ComputeStatistics(entries []subtitle.Entry, gaps []float64) map[string]float64 {
	speeds := make([]float64, len(entries))
	durations := make([]float64, len(entries))
	for i := range entries {
		speeds[i] = entries[i].ReadingSpeed()
		durations[i] = entries[i].Duration()
	}

	return map[string]float64{
		StatAvgReadingSpeed: mean(speeds),
		StatStdReadingSpeed: stdev(speeds),
		StatAvgGap:          mean(gaps),
		StatStdGap:          stdev(gaps),
		StatAvgDuration:     mean(durations),
		StatStdDuration:     stdev(durations),
		StatTotalSubtitles:  float64(len(entries)),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdev is the Bessel-corrected sample standard deviation. A single-element
// vector (the gap vector of a two-entry file) has no spread to measure and
// yields 0; vectors shorter than that never reach this point.
func stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
