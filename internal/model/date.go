package model

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the calendar-date wire format used everywhere in the API
// and the appointment store.
const DateFormat = "2006-01-02"

// ParseDate parses a "2006-01-02" date into a midnight local time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseWeekday parses a weekday name, case-insensitive ("friday", "Friday").
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()) == name {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

// NextWeekday returns the next calendar date falling on wd, counted from
// the date of "from". If "from" already falls on wd it is returned as is.
func NextWeekday(from time.Time, wd time.Weekday) time.Time {
	date := Midnight(from)
	ahead := (int(wd) - int(date.Weekday()) + 7) % 7
	return date.AddDate(0, 0, ahead)
}

// Midnight truncates t to the start of its day in local time.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
