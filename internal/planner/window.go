package planner

import "time"

const DateLayout = "2006-01-02"

// TripWindow is an inclusive range of calendar days.
type TripWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// calendarDay drops the clock and zone of t, keeping the date as seen in t's
// own location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewTripWindow(start, end time.Time) (TripWindow, error) {
	s, e := calendarDay(start), calendarDay(end)
	if e.Before(s) {
		return TripWindow{}, ErrEndBeforeStart
	}
	return TripWindow{Start: s, End: e}, nil
}

// ParseTripWindow reads two YYYY-MM-DD dates.
func ParseTripWindow(start, end string) (TripWindow, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return TripWindow{}, &ValidationError{Field: "start_date", Reason: "start date must be formatted as YYYY-MM-DD"}
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return TripWindow{}, &ValidationError{Field: "end_date", Reason: "end date must be formatted as YYYY-MM-DD"}
	}
	return NewTripWindow(s, e)
}

// DayCount counts both endpoints, so a same-day trip has one day.
func (w TripWindow) DayCount() int {
	return int(w.End.Sub(w.Start)/(24*time.Hour)) + 1
}

func (w TripWindow) Contains(day int) bool {
	return day >= 1 && day <= w.DayCount()
}

// Date returns the calendar date of the given 1-based day.
func (w TripWindow) Date(day int) time.Time {
	return w.Start.AddDate(0, 0, day-1)
}
