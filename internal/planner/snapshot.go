package planner

// Snapshot is the serializable form of a Plan. Drafts are stored as
// snapshots and rebuilt with Restore for each edit.
type Snapshot struct {
	Info              TripInfo            `json:"info"`
	Window            TripWindow          `json:"window"`
	ViewingDay        int                 `json:"viewing_day"`
	CatalogGeneration uint64              `json:"catalog_generation"`
	Catalog           []ActivityRef       `json:"catalog"`
	Placed            []ActivityRef       `json:"placed"`
	Activities        []ScheduledActivity `json:"activities"`
	NextTempID        int64               `json:"next_temp_id"`
}

func (p *Plan) Snapshot() Snapshot {
	placed := make([]ActivityRef, 0, len(p.placed))
	seen := make(map[int64]bool, len(p.placed))
	for _, a := range p.activities {
		if seen[a.ActivityID] {
			continue
		}
		seen[a.ActivityID] = true
		placed = append(placed, p.placed[a.ActivityID])
	}
	return Snapshot{
		Info:              p.info,
		Window:            p.window,
		ViewingDay:        p.viewingDay,
		CatalogGeneration: p.catalogGen,
		Catalog:           p.Catalog(),
		Placed:            placed,
		Activities:        p.Activities(),
		NextTempID:        p.nextTempID,
	}
}

// Restore rebuilds a plan. The temp id counter is moved past every id in the
// snapshot so restored plans never hand out an id twice.
func Restore(s Snapshot) *Plan {
	p := NewPlan(s.Window)
	p.info = s.Info
	p.catalogGen = s.CatalogGeneration
	p.catalog = append([]ActivityRef(nil), s.Catalog...)
	for _, ref := range s.Placed {
		p.placed[ref.ID] = ref
	}
	for _, a := range s.Activities {
		p.activities = append(p.activities, a.clone())
		if a.TempID >= p.nextTempID {
			p.nextTempID = a.TempID + 1
		}
	}
	if s.NextTempID > p.nextTempID {
		p.nextTempID = s.NextTempID
	}
	if s.ViewingDay >= 1 && s.ViewingDay <= p.DayCount() {
		p.viewingDay = s.ViewingDay
	}
	return p
}
