package planner

import (
	"errors"
	"strings"
	"time"
)

// ActivityRef is a catalog entry. The plan copies it when an activity is
// placed and never changes it afterwards.
type ActivityRef struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Address   string  `json:"address"`
	ImageURL  string  `json:"image_url"`
	CountryID int64   `json:"country_id"`
}

// ScheduledActivity places one catalog activity on a day of the trip.
type ScheduledActivity struct {
	TempID     int64      `json:"temp_id"`
	ActivityID int64      `json:"activity_id"`
	DayNumber  int        `json:"day_number"`
	OrderInDay int        `json:"order_in_day"`
	StartTime  *TimeOfDay `json:"start_time"`
	EndTime    *TimeOfDay `json:"end_time"`
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

type TimeSlot string

const (
	Start TimeSlot = "start"
	End   TimeSlot = "end"
)

type TripInfo struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	DestinationID int64  `json:"destination_id"`
}

// Plan holds the draft of one itinerary. It is not safe for concurrent use;
// callers serialize access.
type Plan struct {
	info       TripInfo
	window     TripWindow
	viewingDay int

	catalogGen uint64
	catalog    []ActivityRef

	placed     map[int64]ActivityRef
	activities []ScheduledActivity
	nextTempID int64
}

func NewPlan(window TripWindow) *Plan {
	return &Plan{
		window:     window,
		viewingDay: 1,
		placed:     make(map[int64]ActivityRef),
		nextTempID: 1,
	}
}

func (p *Plan) Info() TripInfo     { return p.info }
func (p *Plan) Window() TripWindow { return p.window }
func (p *Plan) DayCount() int      { return p.window.DayCount() }
func (p *Plan) ViewingDay() int    { return p.viewingDay }
func (p *Plan) Len() int           { return len(p.activities) }

func (p *Plan) Catalog() []ActivityRef {
	return append([]ActivityRef(nil), p.catalog...)
}

// Ref returns the catalog data captured when the activity was placed.
func (p *Plan) Ref(activityID int64) (ActivityRef, bool) {
	ref, ok := p.placed[activityID]
	return ref, ok
}

func (p *Plan) SetInfo(title, description string) {
	p.info.Title = title
	p.info.Description = description
}

// SetWindow replaces the trip dates. Activities beyond the new last day stay
// in the plan and show up in Orphans until they are moved or removed.
func (p *Plan) SetWindow(start, end time.Time) error {
	w, err := NewTripWindow(start, end)
	if err != nil {
		return err
	}
	p.applyWindow(w)
	return nil
}

// ApplyWindow is SetWindow for an already validated window.
func (p *Plan) ApplyWindow(w TripWindow) {
	p.applyWindow(w)
}

func (p *Plan) applyWindow(w TripWindow) {
	p.window = w
	if p.viewingDay > w.DayCount() {
		p.viewingDay = 1
	}
}

func (p *Plan) SetViewingDay(day int) error {
	if !p.window.Contains(day) {
		return ErrDayOutOfRange
	}
	p.viewingDay = day
	return nil
}

// BeginCatalogLoad records a new destination selection and returns the
// generation a later ApplyCatalog must present.
func (p *Plan) BeginCatalogLoad(destinationID int64) uint64 {
	p.info.DestinationID = destinationID
	p.catalogGen++
	p.catalog = nil
	return p.catalogGen
}

// ApplyCatalog installs refs unless a newer selection was made since gen was
// issued. It reports whether the catalog was applied.
func (p *Plan) ApplyCatalog(gen uint64, refs []ActivityRef) bool {
	if gen != p.catalogGen {
		return false
	}
	p.catalog = append([]ActivityRef(nil), refs...)
	return true
}

func (p *Plan) CatalogGeneration() uint64 { return p.catalogGen }

func (p *Plan) catalogRef(activityID int64) (ActivityRef, bool) {
	for _, ref := range p.catalog {
		if ref.ID == activityID {
			return ref, true
		}
	}
	return ActivityRef{}, false
}

func (p *Plan) maxOrder(day int) int {
	m := 0
	for _, a := range p.activities {
		if a.DayNumber == day && a.OrderInDay > m {
			m = a.OrderInDay
		}
	}
	return m
}

func (p *Plan) indexOf(tempID int64) int {
	for i := range p.activities {
		if p.activities[i].TempID == tempID {
			return i
		}
	}
	return -1
}

// AddActivity appends a catalog activity to the end of day. The same
// activity may be added any number of times.
func (p *Plan) AddActivity(activityID int64, day int) (ScheduledActivity, error) {
	ref, ok := p.catalogRef(activityID)
	if !ok {
		return ScheduledActivity{}, ErrActivityNotInCatalog
	}
	if !p.window.Contains(day) {
		return ScheduledActivity{}, ErrDayOutOfRange
	}

	sa := ScheduledActivity{
		TempID:     p.nextTempID,
		ActivityID: activityID,
		DayNumber:  day,
		OrderInDay: p.maxOrder(day) + 1,
	}
	p.nextTempID++
	p.placed[activityID] = ref
	p.activities = append(p.activities, sa)
	return sa, nil
}

func (p *Plan) AddActivityToViewingDay(activityID int64) (ScheduledActivity, error) {
	return p.AddActivity(activityID, p.viewingDay)
}

// RemoveActivity drops the placement. Unknown ids are ignored.
func (p *Plan) RemoveActivity(tempID int64) {
	i := p.indexOf(tempID)
	if i < 0 {
		return
	}
	removed := p.activities[i].ActivityID
	p.activities = append(p.activities[:i], p.activities[i+1:]...)
	for _, a := range p.activities {
		if a.ActivityID == removed {
			return
		}
	}
	delete(p.placed, removed)
}

// MoveActivity swaps the order of the activity with its neighbour in dir.
// It does nothing at either end of the day or for unknown ids.
func (p *Plan) MoveActivity(tempID int64, dir Direction) {
	i := p.indexOf(tempID)
	if i < 0 {
		return
	}
	day := p.dayIndexes(p.activities[i].DayNumber)
	pos := -1
	for k, idx := range day {
		if idx == i {
			pos = k
			break
		}
	}

	var target int
	switch dir {
	case Up:
		if pos == 0 {
			return
		}
		target = day[pos-1]
	case Down:
		if pos == len(day)-1 {
			return
		}
		target = day[pos+1]
	default:
		return
	}

	a, b := &p.activities[i], &p.activities[target]
	a.OrderInDay, b.OrderInDay = b.OrderInDay, a.OrderInDay
}

// MoveToDay appends the activity to the end of newDay. The day it leaves
// keeps its remaining order values as they are.
func (p *Plan) MoveToDay(tempID int64, newDay int) error {
	if !p.window.Contains(newDay) {
		return ErrDayOutOfRange
	}
	i := p.indexOf(tempID)
	if i < 0 {
		return nil
	}
	order := p.maxOrder(newDay) + 1
	p.activities[i].DayNumber = newDay
	p.activities[i].OrderInDay = order
	return nil
}

// SetActivityTime sets or, with a nil t, clears one end of the time slot.
// Start and end are not checked against each other.
func (p *Plan) SetActivityTime(tempID int64, slot TimeSlot, t *TimeOfDay) {
	i := p.indexOf(tempID)
	if i < 0 {
		return
	}
	var v *TimeOfDay
	if t != nil {
		c := *t
		v = &c
	}
	switch slot {
	case Start:
		p.activities[i].StartTime = v
	case End:
		p.activities[i].EndTime = v
	}
}

func (p *Plan) Activity(tempID int64) (ScheduledActivity, bool) {
	i := p.indexOf(tempID)
	if i < 0 {
		return ScheduledActivity{}, false
	}
	return p.activities[i].clone(), true
}

// Activities lists every placement in insertion order.
func (p *Plan) Activities() []ScheduledActivity {
	out := make([]ScheduledActivity, 0, len(p.activities))
	for _, a := range p.activities {
		out = append(out, a.clone())
	}
	return out
}

// Orphans lists placements whose day is past the end of the trip.
func (p *Plan) Orphans() []ScheduledActivity {
	var out []ScheduledActivity
	n := p.DayCount()
	for _, a := range p.activities {
		if a.DayNumber > n {
			out = append(out, a.clone())
		}
	}
	return out
}

// Validate reports everything that blocks submission.
func (p *Plan) Validate() error {
	var errs []error
	if strings.TrimSpace(p.info.Title) == "" {
		errs = append(errs, ErrTitleRequired)
	}
	if p.info.DestinationID == 0 {
		errs = append(errs, ErrDestinationRequired)
	}
	if p.window.End.Before(p.window.Start) {
		errs = append(errs, ErrEndBeforeStart)
	}
	if len(p.Orphans()) > 0 {
		errs = append(errs, ErrOrphanedActivities)
	}
	return errors.Join(errs...)
}

func (a ScheduledActivity) clone() ScheduledActivity {
	if a.StartTime != nil {
		s := *a.StartTime
		a.StartTime = &s
	}
	if a.EndTime != nil {
		e := *a.EndTime
		a.EndTime = &e
	}
	return a
}
