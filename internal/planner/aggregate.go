package planner

import (
	"cmp"
	"iter"
	"slices"
)

// dayIndexes returns the positions in p.activities of the entries on day,
// ordered by OrderInDay. Ties fall back to TempID so the result is stable.
func (p *Plan) dayIndexes(day int) []int {
	var idx []int
	for i, a := range p.activities {
		if a.DayNumber == day {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(idx, func(x, y int) int {
		a, b := p.activities[x], p.activities[y]
		if c := cmp.Compare(a.OrderInDay, b.OrderInDay); c != 0 {
			return c
		}
		return cmp.Compare(a.TempID, b.TempID)
	})
	return idx
}

// ActivitiesForDay yields the day plan in order. Each iteration reads the
// plan as it is at that moment, so the sequence can be ranged over again
// after further edits.
func (p *Plan) ActivitiesForDay(day int) iter.Seq[ScheduledActivity] {
	return func(yield func(ScheduledActivity) bool) {
		for _, i := range p.dayIndexes(day) {
			if !yield(p.activities[i].clone()) {
				return
			}
		}
	}
}

func (p *Plan) DayTotal(day int) float64 {
	var total float64
	for a := range p.ActivitiesForDay(day) {
		total += p.placed[a.ActivityID].Price
	}
	return total
}

// TripTotal sums the days of the trip. Orphaned placements do not count.
func (p *Plan) TripTotal() float64 {
	var total float64
	for day := 1; day <= p.DayCount(); day++ {
		total += p.DayTotal(day)
	}
	return total
}
