// Package calendar merges personal leave records, company holidays and
// weekends into per-day views. Every function here is pure and works on
// UTC calendar days.
package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of a calendar day
const DateLayout = "2006-01-02"

// Day is a UTC calendar day serialized as YYYY-MM-DD
type Day struct {
	time.Time
}

// NewDay truncates t to its UTC calendar day
func NewDay(t time.Time) Day {
	return Day{Time: StartOfDay(t)}
}

// String returns the day as YYYY-MM-DD
func (d Day) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes the day as a YYYY-MM-DD string
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts any format understood by ParseDay
func (d *Day) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDay(raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// StartOfDay returns 00:00:00.000 UTC of t's UTC calendar day
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's UTC calendar day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// StartOfMonth returns the first day of t's UTC month
func StartOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of t's UTC month
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// IsWeekend reports whether t falls on Saturday or Sunday in UTC
func IsWeekend(t time.Time) bool {
	switch t.UTC().Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// IsLastDayOfMonth reports whether t is the last day of its UTC month:
// adding one UTC day changes the month.
func IsLastDayOfMonth(t time.Time) bool {
	today := StartOfDay(t)
	return today.AddDate(0, 0, 1).Month() != today.Month()
}

// Key formats t's UTC calendar day as YYYY-MM-DD
func Key(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

var acceptedLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDay parses an ISO-8601 date or timestamp and returns its UTC calendar day
func ParseDay(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range acceptedLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return StartOfDay(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", raw)
}
