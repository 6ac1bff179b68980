package domain

import "time"

// DateOnly truncates t to midnight UTC of its calendar day.
// Trip dates travel as calendar days; the time-of-day and zone are dropped.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end.
// It is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	return int(e.Sub(s).Hours() / 24)
}

// TripDayCount returns the inclusive number of days in [start, end].
func TripDayCount(start, end time.Time) int {
	return DaysBetween(start, end) + 1
}

// DateKey formats a calendar day as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return DateOnly(t).Format("2006-01-02")
}
