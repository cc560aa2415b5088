package calendar

import (
	"time"

	apperrors "leave-tracker-backend/internal/errors"
)

// Range is an inclusive span of UTC calendar days
type Range struct {
	Start time.Time
	End   time.Time
}

// ResolveRange normalizes an optional start/end pair into an inclusive day range.
// With neither bound it covers now's UTC month; a lone start runs to the end of
// its month and a lone end starts at the beginning of its month.
func ResolveRange(start, end *time.Time, now time.Time) (Range, error) {
	var r Range

	switch {
	case start == nil && end == nil:
		r = Range{Start: StartOfMonth(now), End: EndOfMonth(now)}
	case start != nil && end == nil:
		r = Range{Start: StartOfDay(*start), End: EndOfMonth(*start)}
	case start == nil && end != nil:
		r = Range{Start: StartOfMonth(*end), End: StartOfDay(*end)}
	default:
		r = Range{Start: StartOfDay(*start), End: StartOfDay(*end)}
	}

	if r.Start.After(r.End) {
		return Range{}, apperrors.ErrInvalidRange
	}
	return r, nil
}

// SingleDay returns the range covering only t's UTC day
func SingleDay(t time.Time) Range {
	day := StartOfDay(t)
	return Range{Start: day, End: day}
}

// Days returns the number of calendar days in the range, inclusive
func (r Range) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Dates enumerates every day in the range in ascending order
func (r Range) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Days())
	for day := r.Start; !day.After(r.End); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}
	return dates
}

// Contains reports whether t's UTC day falls within the range
func (r Range) Contains(t time.Time) bool {
	day := StartOfDay(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// UpperBound returns the last instant of the range, for inclusive timestamp queries
func (r Range) UpperBound() time.Time {
	return EndOfDay(r.End)
}
