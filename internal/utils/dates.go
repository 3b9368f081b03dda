package utils

import "time"

// DateOnly truncates t to midnight UTC. Purchase and prediction dates are
// calendar dates; all comparisons in the lead pipeline go through this.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b. Negative when
// b is before a.
func DaysBetween(a, b time.Time) int {
	a = DateOnly(a)
	b = DateOnly(b)
	return int(b.Sub(a).Hours() / 24)
}
