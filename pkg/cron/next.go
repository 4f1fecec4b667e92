package cron

import (
	"fmt"
	"time"
)

// Next returns the earliest instant strictly after from that satisfies
// the schedule. The search starts at from truncated to the whole minute
// plus one minute, runs in from's location, and gives up with
// ErrUnreachable once it has scanned one year ahead.
//
// Normalisation advances the coarsest out-of-range field first and
// resets the finer fields: a month mismatch jumps to the first day of
// the next month at 00:00, a day mismatch to the next midnight, an hour
// mismatch to the top of the next hour, a minute mismatch by one minute.
func (s *Schedule) Next(from time.Time) (time.Time, error) {
	loc := from.Location()
	t := time.Date(from.Year(), from.Month(), from.Day(), from.Hour(), from.Minute(), 0, 0, loc)
	t = t.Add(time.Minute)

	limit := t.AddDate(1, 0, 0)
	for !t.After(limit) {
		switch {
		case !s.month.has(int(t.Month())):
			t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
		case !s.matchesDay(t):
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
		case !s.hour.has(t.Hour()):
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc).Add(time.Hour)
		case !s.minute.has(t.Minute()):
			t = t.Add(time.Minute)
		default:
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q never fires after %s: %w", s.expr, from.Format(time.RFC3339), ErrUnreachable)
}

// matchesDay requires both day-of-month and day-of-week to admit t.
func (s *Schedule) matchesDay(t time.Time) bool {
	return s.dom.has(t.Day()) && s.weekday.has(int(t.Weekday()))
}

// Matches reports whether the minute containing t satisfies the schedule.
func (s *Schedule) Matches(t time.Time) bool {
	return s.minute.has(t.Minute()) &&
		s.hour.has(t.Hour()) &&
		s.month.has(int(t.Month())) &&
		s.matchesDay(t)
}

// NextAfter is a convenience over Parse + Next for one-shot callers.
func NextAfter(expr string, from time.Time) (time.Time, error) {
	s, err := Parse(expr)
	if err != nil {
		return time.Time{}, err
	}
	return s.Next(from)
}
