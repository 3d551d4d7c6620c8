// Package civil converts the wall-clock fields stored on slots (civil date
// and clock strings in the configured interview timezone) to and from UTC
// instants. It is the only place such conversions happen; everything else in
// the system works in UTC.
package civil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the storage format for slot dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the storage format for slot start/end times.
	ClockLayout = "15:04"

	// DefaultZone governs Slot ↔ Interview conversions unless
	// INTERVIEW_TIMEZONE overrides it.
	DefaultZone = "Asia/Kolkata"
)

// LoadZone resolves a zone name, falling back to DefaultZone when empty.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid interview timezone %q: %w", name, err)
	}
	return loc, nil
}

// ValidDate reports whether s parses as a civil date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClock reports whether s parses as a civil clock value.
func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// ClockBefore reports whether clock a is strictly before clock b.
func ClockBefore(a, b string) (bool, error) {
	ta, err := time.Parse(ClockLayout, a)
	if err != nil {
		return false, fmt.Errorf("invalid clock %q: %w", a, err)
	}
	tb, err := time.Parse(ClockLayout, b)
	if err != nil {
		return false, fmt.Errorf("invalid clock %q: %w", b, err)
	}
	return ta.Before(tb), nil
}

// Minutes returns the whole minutes between two clock values on one day.
func Minutes(start, end string) (int, error) {
	ts, err := time.Parse(ClockLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", start, err)
	}
	te, err := time.Parse(ClockLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", end, err)
	}
	return int(te.Sub(ts).Minutes()), nil
}

// ToUTC projects a civil (date, clock) pair in loc onto a UTC instant.
func ToUTC(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid civil time %q %q: %w", date, clock, err)
	}
	return t.UTC(), nil
}

// Window projects a slot's civil window onto UTC start and end instants.
func Window(date, start, end string, loc *time.Location) (time.Time, time.Time, error) {
	s, err := ToUTC(date, start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := ToUTC(date, end, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !s.Before(e) {
		return time.Time{}, time.Time{}, fmt.Errorf("civil window %s–%s is empty or inverted", start, end)
	}
	return s, e, nil
}

// FormatInZone renders a UTC instant as a human-readable local time for
// outbound mail, e.g. "Sunday, 15 June 2025 at 10:00 AM IST".
func FormatInZone(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday, 2 January 2006 at 3:04 PM MST")
}

// AddWeeks shifts a civil date by n whole weeks, used when a recurrence
// descriptor materializes a slot series.
func AddWeeks(date string, n int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.AddDate(0, 0, 7*n).Format(DateLayout), nil
}
