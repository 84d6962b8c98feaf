package projection

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SEASON - The program window
// =============================================================================

// DateLayout is the canonical season date format.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order. Values without a zone are read as UTC.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

const secondsPerDay = 24 * 60 * 60

var daysPerWeek = decimal.NewFromInt(7)

// Season is the program window from start to end.
type Season struct {
	Start time.Time
	End   time.Time
}

// ParseDate parses a season date. Empty or malformed input reports false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseSeason parses both dates. The season is usable only when both parse
// and end is strictly after start.
func ParseSeason(start, end string) (Season, bool) {
	s, ok := ParseDate(start)
	if !ok {
		return Season{}, false
	}
	e, ok := ParseDate(end)
	if !ok {
		return Season{}, false
	}
	if !e.After(s) {
		return Season{}, false
	}
	return Season{Start: s, End: e}, true
}

// Days returns the whole days between start and end. A partial trailing day
// counts as a full day. Computed on Unix seconds so spans beyond the range
// of time.Duration stay exact.
func (s Season) Days() int {
	secs := s.End.Unix() - s.Start.Unix()
	nanos := s.End.Nanosecond() - s.Start.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += int(time.Second)
	}

	days := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nanos != 0 {
		days++
	}
	return int(days)
}

// Weeks returns Days/7 without rounding.
func (s Season) Weeks() decimal.Decimal {
	return decimal.NewFromInt(int64(s.Days())).Div(daysPerWeek)
}

// String returns "[start, end]".
func (s Season) String() string {
	return "[" + s.Start.Format(DateLayout) + ", " + s.End.Format(DateLayout) + "]"
}
