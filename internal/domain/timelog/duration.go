// Package timelog records time spent on tasks.
package timelog

import (
	"fmt"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// MaxDurationSeconds caps a single logged interval at 24 hours.
const MaxDurationSeconds int64 = 86400

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// Duration is a validated number of seconds in [0, MaxDurationSeconds].
type Duration struct {
	seconds int64
}

// NewDuration validates seconds and returns a *domain.InvalidDurationError
// when it is negative or above MaxDurationSeconds.
func NewDuration(seconds int64) (Duration, error) {
	if seconds < 0 {
		return Duration{}, &domain.InvalidDurationError{Seconds: seconds, Reason: "duration cannot be negative"}
	}
	if seconds > MaxDurationSeconds {
		return Duration{}, &domain.InvalidDurationError{
			Seconds: seconds,
			Reason:  "duration exceeds maximum allowed (86400 seconds = 24 hours)",
		}
	}
	return Duration{seconds: seconds}, nil
}

// Seconds returns the exact number of seconds.
func (d Duration) Seconds() int64 { return d.seconds }

// Minutes returns the duration in fractional minutes.
func (d Duration) Minutes() float64 { return float64(d.seconds) / secondsPerMinute }

// Hours returns the duration in fractional hours.
func (d Duration) Hours() float64 { return float64(d.seconds) / secondsPerHour }

// Add returns the sum of both durations, validated against the same ceiling
// as NewDuration.
func (d Duration) Add(other Duration) (Duration, error) {
	return NewDuration(d.seconds + other.seconds)
}

// String renders seconds below a minute, minutes below an hour, and hours
// otherwise: "45s", "2.5m", "1.50h".
func (d Duration) String() string {
	switch {
	case d.seconds < secondsPerMinute:
		return fmt.Sprintf("%ds", d.seconds)
	case d.seconds < secondsPerHour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%.2fh", d.Hours())
	}
}
