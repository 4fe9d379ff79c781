// Package datetime converts between the split {date, time} form used by input
// prompts and the single absolute timestamp stored by the medicine backend.
//
// All functions are pure. The location argument decides which wall clock the
// date and time refer to; callers normally pass time.Local.
package datetime

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the calendar date format accepted and produced (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// ClockLayout is the wall-clock format accepted and produced (HH:MM).
	ClockLayout = "15:04"
)

// ErrMalformed is returned for date or time strings that cannot be parsed.
var ErrMalformed = errors.New("malformed date/time")

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Combine places the wall-clock time clock ("HH:MM") on the calendar date
// ("YYYY-MM-DD") in loc, with seconds and nanoseconds set to zero.
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrMalformed, date)
	}

	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: time %q", ErrMalformed, clock)
	}
	hh := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	mm := int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	t := time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, loc)

	// time.Date normalizes wall times skipped by a DST transition.
	if t.Hour() != hh || t.Minute() != mm || t.Day() != day.Day() {
		return time.Time{}, fmt.Errorf("%w: %s %s does not exist in %s", ErrMalformed, date, clock, loc)
	}
	return t, nil
}

// Split returns the calendar date and wall-clock time of t as seen in loc.
func Split(t time.Time, loc *time.Location) (date, clock string) {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)
	return lt.Format(DateLayout), lt.Format(ClockLayout)
}

// Format serializes t as RFC 3339 in UTC, the form sent to the backend.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestamp parses a backend timestamp. Fractional seconds are accepted.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrMalformed, s)
	}
	return t, nil
}

// CombineString is Combine followed by Format.
func CombineString(date, clock string, loc *time.Location) (string, error) {
	t, err := Combine(date, clock, loc)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}
