package util

import "time"

// DurationToMs converts d to fractional milliseconds.
func DurationToMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// MsToDuration converts fractional milliseconds to a time.Duration,
// truncating anything below a nanosecond.
func MsToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// FrameInterval returns the length of one frame in milliseconds for the given
// rate.
func FrameInterval(fps float64) float64 {
	return 1000.0 / fps
}
