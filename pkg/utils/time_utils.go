package utils

import "time"

const dateLayout = "2006-01-02"

// Today returns the current calendar date in loc.
func Today(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatDisplayDate renders a trip day the way the planning screen shows it,
// e.g. "Wednesday, Jan 1, 2025".
func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Monday, Jan 2, 2006")
}
