// Package labor prices work sessions and rolls them up by employee or order.
//
// Every function here is pure: "now" is always passed in, so live figures for
// open sessions are recomputed on each call and never cached.
package labor

import (
	"math"
	"time"

	"carrozzeria/internal/domain/entities"
)

// DurationMinutes returns the whole minutes between start and end, truncated.
// A negative span (clock skew) yields 0.
func DurationMinutes(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(math.Floor(d.Minutes()))
}

func Hours(minutes int) float64 {
	return float64(minutes) / 60
}

func Cost(minutes int, hourlyRate float64) float64 {
	return Hours(minutes) * hourlyRate
}

// LiveMinutes is the stored duration of a closed session or the elapsed
// minutes of an open one measured against now.
func LiveMinutes(s entities.WorkSession, now time.Time) int {
	if s.DurationMinutes != nil {
		return *s.DurationMinutes
	}
	if s.EndTime != nil {
		return DurationMinutes(s.StartTime, *s.EndTime)
	}
	return DurationMinutes(s.StartTime, now)
}

func Summarize(minutes int, hourlyRate float64) entities.CostSummary {
	return entities.CostSummary{
		DurationMinutes: minutes,
		DurationHours:   Hours(minutes),
		HourlyRate:      hourlyRate,
		TotalCost:       Cost(minutes, hourlyRate),
	}
}

// Round2 rounds to cents. Only response payloads and rendered text use it.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
