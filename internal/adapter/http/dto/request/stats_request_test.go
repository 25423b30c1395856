package request

import (
	"errors"
	"testing"
	"time"
)

func TestStatsQuery_ResolvePeriod(t *testing.T) {
	now := time.Date(2026, time.February, 17, 10, 30, 0, 0, time.UTC)

	t.Run("defaults to current month", func(t *testing.T) {
		from, to, err := StatsQuery{}.ResolvePeriod(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !from.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected from %v", from)
		}
		if !to.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)) {
			t.Fatalf("unexpected to %v", to)
		}
	})

	t.Run("date-only end covers the whole day", func(t *testing.T) {
		from, to, err := StatsQuery{Start: "2026-01-10", End: "2026-01-12"}.ResolvePeriod(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !from.Equal(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected from %v", from)
		}
		if !to.Equal(time.Date(2026, time.January, 12, 23, 59, 59, 999999999, time.UTC)) {
			t.Fatalf("unexpected to %v", to)
		}
	})

	t.Run("rfc3339 bounds are kept as given", func(t *testing.T) {
		from, to, err := StatsQuery{Start: "2026-01-10T08:00:00+01:00", End: "2026-01-10T18:00:00Z"}.ResolvePeriod(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !from.Equal(time.Date(2026, time.January, 10, 7, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected from %v", from)
		}
		if !to.Equal(time.Date(2026, time.January, 10, 18, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected to %v", to)
		}
	})

	t.Run("invalid bound", func(t *testing.T) {
		if _, _, err := (StatsQuery{Start: "10/01/2026"}).ResolvePeriod(now); !errors.Is(err, ErrInvalidPeriodBound) {
			t.Fatalf("expected ErrInvalidPeriodBound, got %v", err)
		}
		if _, _, err := (StatsQuery{End: "yesterday"}).ResolvePeriod(now); !errors.Is(err, ErrInvalidPeriodBound) {
			t.Fatalf("expected ErrInvalidPeriodBound, got %v", err)
		}
	})
}
