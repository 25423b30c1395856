package request

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidPeriodBound = errors.New("invalid period bound")

// StatsQuery is bound from the /stats query string.
type StatsQuery struct {
	EmployeeID string `form:"employee_id"`
	Start      string `form:"start"`
	End        string `form:"end"`
}

// ResolvePeriod parses start/end as RFC3339 or YYYY-MM-DD (UTC).
// A date-only end covers the whole day. Missing bounds default to the
// calendar month containing now.
func (q StatsQuery) ResolvePeriod(now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := monthStart
	to := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if v := strings.TrimSpace(q.Start); v != "" {
		t, _, err := parseBound(v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if v := strings.TrimSpace(q.End); v != "" {
		t, dateOnly, err := parseBound(v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		to = t
	}
	return from, to, nil
}

func parseBound(v string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), false, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, ErrInvalidPeriodBound
}
