package services

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// ItineraryStore is the part of the trip API that persists itineraries.
type ItineraryStore interface {
	ListItinerariesForUser(ctx context.Context, userID int64) ([]response_models.Itinerary, error)
	ListActivitiesForItinerary(ctx context.Context, itineraryID int64) ([]response_models.ItineraryActivity, error)
	CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.Itinerary, error)
	ModifyItinerary(ctx context.Context, req request_models.ModifyItineraryRequest) (*response_models.Itinerary, error)
}

type PlanningServiceInterface interface {
	CreateDraft(ctx context.Context, userID int64) (*response_models.PlanResponse, error)
	GetDraft(ctx context.Context, userID int64, draftID uuid.UUID) (*response_models.PlanResponse, error)
	ListDrafts(ctx context.Context, userID int64) ([]response_models.PlanSummary, error)
	AbandonDraft(ctx context.Context, userID int64, draftID uuid.UUID) error

	UpdateTripInfo(ctx context.Context, userID int64, draftID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.PlanResponse, error)
	SelectDestination(ctx context.Context, userID int64, draftID uuid.UUID, destinationID int64) (*response_models.PlanResponse, error)
	SetViewingDay(ctx context.Context, userID int64, draftID uuid.UUID, day int) (*response_models.PlanResponse, error)
	AddActivity(ctx context.Context, userID int64, draftID uuid.UUID, activityID int64, day *int) (*response_models.PlanResponse, error)
	RemoveActivity(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64) (*response_models.PlanResponse, error)
	MoveActivity(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64, dir planner.Direction) (*response_models.PlanResponse, error)
	MoveToDay(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64, day int) (*response_models.PlanResponse, error)
	SetActivityTime(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64, slot planner.TimeSlot, t *planner.TimeOfDay) (*response_models.PlanResponse, error)

	GetDay(ctx context.Context, userID int64, draftID uuid.UUID, day int) (*response_models.PlanDayResponse, error)
	GetPayload(ctx context.Context, userID int64, draftID uuid.UUID) (*request_models.CreateItineraryRequest, error)
	Submit(ctx context.Context, userID int64, draftID uuid.UUID) (*response_models.SubmissionResponse, error)

	ListItineraries(ctx context.Context, userID int64) ([]response_models.Itinerary, error)
	GetItineraryActivities(ctx context.Context, itineraryID int64) ([]response_models.ItineraryActivity, error)
	LoadItineraryForEdit(ctx context.Context, userID int64, itineraryID int64) (*response_models.PlanResponse, error)
}

const lockStripes = 64

type PlanningService struct {
	drafts      repositories.DraftRepository
	catalog     CatalogServiceInterface
	itineraries ItineraryStore
	log         *zap.Logger

	locks [lockStripes]sync.Mutex
	// submitting holds the ids of drafts with a submit in flight.
	submitting sync.Map
}

func NewPlanningService(
	drafts repositories.DraftRepository,
	catalog CatalogServiceInterface,
	itineraries ItineraryStore,
	log *zap.Logger,
) PlanningServiceInterface {
	return &PlanningService{
		drafts:      drafts,
		catalog:     catalog,
		itineraries: itineraries,
		log:         log,
	}
}

// errUnchanged lets an edit skip the write when nothing moved.
var errUnchanged = errors.New("unchanged")

func (s *PlanningService) lockFor(id uuid.UUID) *sync.Mutex {
	return &s.locks[int(id[0])%lockStripes]
}

func (s *PlanningService) load(ctx context.Context, userID int64, id uuid.UUID) (*dbm.PlanDraft, *planner.Plan, error) {
	draft, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if draft == nil || draft.UserID != userID {
		return nil, nil, utils.ErrDraftNotFound
	}
	var snap planner.Snapshot
	if err := json.Unmarshal(draft.Snapshot, &snap); err != nil {
		return nil, nil, fmt.Errorf("%w: corrupt draft %s: %w", utils.ErrDatabaseError, id, err)
	}
	return draft, planner.Restore(snap), nil
}

func (s *PlanningService) save(ctx context.Context, draft *dbm.PlanDraft, plan *planner.Plan) error {
	raw, err := json.Marshal(plan.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: encode draft: %w", utils.ErrDatabaseError, err)
	}
	info := plan.Info()
	draft.Title = info.Title
	draft.DestinationID = info.DestinationID
	draft.ActivityIDs = activityIDs(plan)
	draft.Snapshot = raw
	draft.Revision++
	if err := s.drafts.Save(ctx, draft); err != nil {
		return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	return nil
}

// edit runs one planner transition against the stored draft. When fn fails
// the draft is left as it was.
func (s *PlanningService) edit(ctx context.Context, userID int64, id uuid.UUID, fn func(*planner.Plan) error) (*response_models.PlanResponse, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	draft, plan, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	switch err := fn(plan); {
	case errors.Is(err, errUnchanged):
		return buildPlanResponse(draft, plan), nil
	case err != nil:
		return nil, err
	}
	if err := s.save(ctx, draft, plan); err != nil {
		return nil, err
	}
	return buildPlanResponse(draft, plan), nil
}

func (s *PlanningService) CreateDraft(ctx context.Context, userID int64) (*response_models.PlanResponse, error) {
	today := utils.Today(time.Local)
	window, err := planner.NewTripWindow(today, today)
	if err != nil {
		return nil, err
	}
	plan := planner.NewPlan(window)
	draft := &dbm.PlanDraft{UserID: userID}
	if err := s.save(ctx, draft, plan); err != nil {
		return nil, err
	}
	s.log.Info("draft created", zap.String("draft_id", draft.ID.String()), zap.Int64("user_id", userID))
	return buildPlanResponse(draft, plan), nil
}

func (s *PlanningService) GetDraft(ctx context.Context, userID int64, draftID uuid.UUID) (*response_models.PlanResponse, error) {
	draft, plan, err := s.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	return buildPlanResponse(draft, plan), nil
}

func (s *PlanningService) ListDrafts(ctx context.Context, userID int64) ([]response_models.PlanSummary, error) {
	drafts, err := s.drafts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	out := make([]response_models.PlanSummary, 0, len(drafts))
	for _, d := range drafts {
		var snap planner.Snapshot
		if err := json.Unmarshal(d.Snapshot, &snap); err != nil {
			s.log.Warn("skipping unreadable draft", zap.String("draft_id", d.ID.String()), zap.Error(err))
			continue
		}
		out = append(out, response_models.PlanSummary{
			ID:         d.ID.String(),
			Title:      d.Title,
			StartDate:  utils.FormatDate(snap.Window.Start),
			EndDate:    utils.FormatDate(snap.Window.End),
			Activities: len(snap.Activities),
			UpdatedAt:  time.Unix(d.UpdatedAt, 0).UTC(),
		})
	}
	return out, nil
}

func (s *PlanningService) AbandonDraft(ctx context.Context, userID int64, draftID uuid.UUID) error {
	mu := s.lockFor(draftID)
	mu.Lock()
	defer mu.Unlock()

	if _, _, err := s.load(ctx, userID, draftID); err != nil {
		return err
	}
	if err := s.drafts.Delete(ctx, draftID); err != nil {
		return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *PlanningService) UpdateTripInfo(ctx context.Context, userID int64, draftID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.PlanResponse, error) {
	window, err := planner.ParseTripWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		p.SetInfo(req.Title, req.Description)
		p.ApplyWindow(window)
		return nil
	})
}

// SelectDestination records the selection, fetches the catalog without
// holding the draft, then applies it only if no newer selection was made in
// the meantime.
func (s *PlanningService) SelectDestination(ctx context.Context, userID int64, draftID uuid.UUID, destinationID int64) (*response_models.PlanResponse, error) {
	if destinationID <= 0 {
		return nil, planner.ErrDestinationRequired
	}

	var gen uint64
	if _, err := s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		gen = p.BeginCatalogLoad(destinationID)
		return nil
	}); err != nil {
		return nil, err
	}

	refs := ToActivityRefs(s.catalog.ListActivitiesByDestination(ctx, destinationID))

	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		if !p.ApplyCatalog(gen, refs) {
			s.log.Debug("dropping stale catalog",
				zap.String("draft_id", draftID.String()),
				zap.Int64("destination_id", destinationID))
			return errUnchanged
		}
		return nil
	})
}

func (s *PlanningService) SetViewingDay(ctx context.Context, userID int64, draftID uuid.UUID, day int) (*response_models.PlanResponse, error) {
	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		return p.SetViewingDay(day)
	})
}

// AddActivity places the activity on day, or on the viewing day when day is
// nil.
func (s *PlanningService) AddActivity(ctx context.Context, userID int64, draftID uuid.UUID, activityID int64, day *int) (*response_models.PlanResponse, error) {
	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		var err error
		if day == nil {
			_, err = p.AddActivityToViewingDay(activityID)
		} else {
			_, err = p.AddActivity(activityID, *day)
		}
		return err
	})
}

func (s *PlanningService) RemoveActivity(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64) (*response_models.PlanResponse, error) {
	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		if _, ok := p.Activity(tempID); !ok {
			return errUnchanged
		}
		p.RemoveActivity(tempID)
		return nil
	})
}

func (s *PlanningService) MoveActivity(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64, dir planner.Direction) (*response_models.PlanResponse, error) {
	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		p.MoveActivity(tempID, dir)
		return nil
	})
}

func (s *PlanningService) MoveToDay(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64, day int) (*response_models.PlanResponse, error) {
	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		return p.MoveToDay(tempID, day)
	})
}

func (s *PlanningService) SetActivityTime(ctx context.Context, userID int64, draftID uuid.UUID, tempID int64, slot planner.TimeSlot, t *planner.TimeOfDay) (*response_models.PlanResponse, error) {
	return s.edit(ctx, userID, draftID, func(p *planner.Plan) error {
		p.SetActivityTime(tempID, slot, t)
		return nil
	})
}

func (s *PlanningService) GetDay(ctx context.Context, userID int64, draftID uuid.UUID, day int) (*response_models.PlanDayResponse, error) {
	_, plan, err := s.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if !plan.Window().Contains(day) {
		return nil, planner.ErrDayOutOfRange
	}
	d := buildDay(plan, day)
	return &d, nil
}

// GetPayload previews what Submit would send for a new itinerary.
func (s *PlanningService) GetPayload(ctx context.Context, userID int64, draftID uuid.UUID) (*request_models.CreateItineraryRequest, error) {
	_, plan, err := s.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	payload := plan.ToPersistencePayload(userID)
	return &payload, nil
}

// Submit sends the draft to the trip API. Drafts opened from a persisted
// itinerary update it in place. The draft is removed on success unless it
// was edited while the request was in flight, in which case it is kept and
// linked to the saved itinerary so the next submit updates it. On failure
// the draft is kept as it was. Only one submit per draft runs at a time.
func (s *PlanningService) Submit(ctx context.Context, userID int64, draftID uuid.UUID) (*response_models.SubmissionResponse, error) {
	mu := s.lockFor(draftID)
	mu.Lock()
	draft, plan, err := s.load(ctx, userID, draftID)
	if err == nil {
		err = plan.Validate()
	}
	if err == nil {
		if _, busy := s.submitting.LoadOrStore(draftID, struct{}{}); busy {
			err = utils.ErrSubmissionInProgress
		}
	}
	mu.Unlock()
	if err != nil {
		return nil, err
	}
	defer s.submitting.Delete(draftID)

	var itinerary *response_models.Itinerary
	if draft.ItineraryID != 0 {
		itinerary, err = s.itineraries.ModifyItinerary(ctx, plan.ToModifyPayload(draft.ItineraryID))
	} else {
		itinerary, err = s.itineraries.CreateItinerary(ctx, plan.ToPersistencePayload(userID))
	}
	if err != nil {
		s.log.Warn("itinerary submission failed",
			zap.String("draft_id", draftID.String()),
			zap.Int64("itinerary_id", draft.ItineraryID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrSubmissionFailed, err)
	}

	mu.Lock()
	defer mu.Unlock()
	current, err := s.drafts.GetByID(ctx, draftID)
	switch {
	case err != nil:
		s.log.Error("could not reload submitted draft", zap.String("draft_id", draftID.String()), zap.Error(err))
	case current != nil && current.Revision == draft.Revision:
		if err := s.drafts.Delete(ctx, draftID); err != nil {
			s.log.Error("could not delete submitted draft", zap.String("draft_id", draftID.String()), zap.Error(err))
		}
	case current == nil:
		s.log.Info("draft abandoned during submission", zap.String("draft_id", draftID.String()))
	default:
		s.log.Info("draft changed during submission, keeping it", zap.String("draft_id", draftID.String()))
		if current.ItineraryID == 0 && itinerary != nil && itinerary.ID != 0 {
			current.ItineraryID = itinerary.ID
			if err := s.drafts.Save(ctx, current); err != nil {
				s.log.Error("could not link draft to itinerary",
					zap.String("draft_id", draftID.String()), zap.Int64("itinerary_id", itinerary.ID), zap.Error(err))
			}
		}
	}

	return &response_models.SubmissionResponse{DraftID: draftID.String(), Itinerary: itinerary}, nil
}

func (s *PlanningService) ListItineraries(ctx context.Context, userID int64) ([]response_models.Itinerary, error) {
	out, err := s.itineraries.ListItinerariesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrRemoteUnavailable, err)
	}
	if out == nil {
		out = []response_models.Itinerary{}
	}
	return out, nil
}

func (s *PlanningService) GetItineraryActivities(ctx context.Context, itineraryID int64) ([]response_models.ItineraryActivity, error) {
	out, err := s.itineraries.ListActivitiesForItinerary(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrRemoteUnavailable, err)
	}
	if out == nil {
		out = []response_models.ItineraryActivity{}
	}
	return out, nil
}

// LoadItineraryForEdit opens a persisted itinerary as a new draft. Its
// activities keep their days, order and times; submitting the draft updates
// the itinerary instead of creating one.
func (s *PlanningService) LoadItineraryForEdit(ctx context.Context, userID int64, itineraryID int64) (*response_models.PlanResponse, error) {
	itineraries, err := s.ListItineraries(ctx, userID)
	if err != nil {
		return nil, err
	}
	var found *response_models.Itinerary
	for i := range itineraries {
		if itineraries[i].ID == itineraryID {
			found = &itineraries[i]
			break
		}
	}
	if found == nil {
		return nil, utils.ErrItineraryNotFound
	}

	window, err := planner.ParseTripWindow(dateOnly(found.StartDate), dateOnly(found.EndDate))
	if err != nil {
		return nil, fmt.Errorf("%w: itinerary %d has unusable dates: %w", utils.ErrInvalidInput, itineraryID, err)
	}

	persisted, err := s.GetItineraryActivities(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	snap, err := snapshotFromItinerary(*found, window, persisted)
	if err != nil {
		return nil, err
	}
	if snap.Info.DestinationID != 0 {
		// Offer the whole destination, not only what was already placed.
		if full := ToActivityRefs(s.catalog.ListActivitiesByDestination(ctx, snap.Info.DestinationID)); len(full) > 0 {
			snap.Catalog = full
		}
		snap.CatalogGeneration = 1
	}
	plan := planner.Restore(snap)

	draft := &dbm.PlanDraft{UserID: userID, ItineraryID: itineraryID}
	if err := s.save(ctx, draft, plan); err != nil {
		return nil, err
	}
	s.log.Info("itinerary opened for edit",
		zap.String("draft_id", draft.ID.String()), zap.Int64("itinerary_id", itineraryID))
	return buildPlanResponse(draft, plan), nil
}

func snapshotFromItinerary(it response_models.Itinerary, window planner.TripWindow, persisted []response_models.ItineraryActivity) (planner.Snapshot, error) {
	snap := planner.Snapshot{
		Info: planner.TripInfo{
			Title:       it.Title,
			Description: it.Description,
		},
		Window:     window,
		ViewingDay: 1,
	}

	seen := make(map[int64]bool)
	nextOrder := make(map[int]int)
	for i, pa := range persisted {
		ref := ToActivityRefs([]response_models.Activity{pa.Activity})[0]
		if !seen[ref.ID] {
			seen[ref.ID] = true
			snap.Placed = append(snap.Placed, ref)
			snap.Catalog = append(snap.Catalog, ref)
		}
		if snap.Info.DestinationID == 0 {
			snap.Info.DestinationID = ref.CountryID
		}

		start, err := planner.ParseOptionalTime(trimSeconds(pa.StartTime))
		if err != nil {
			return planner.Snapshot{}, err
		}
		end, err := planner.ParseOptionalTime(trimSeconds(pa.EndTime))
		if err != nil {
			return planner.Snapshot{}, err
		}

		order := nextOrder[pa.DayNumber] + 1
		if pa.OrderInDay != nil {
			order = *pa.OrderInDay
		}
		if order > nextOrder[pa.DayNumber] {
			nextOrder[pa.DayNumber] = order
		}

		snap.Activities = append(snap.Activities, planner.ScheduledActivity{
			TempID:     int64(i + 1),
			ActivityID: ref.ID,
			DayNumber:  pa.DayNumber,
			OrderInDay: order,
			StartTime:  start,
			EndTime:    end,
		})
	}
	separateTiedOrders(snap.Activities)
	snap.NextTempID = int64(len(persisted) + 1)
	return snap, nil
}

// separateTiedOrders makes order_in_day unique within each day. Walking a day
// in (order, tempId) order, any order not above the previous one is bumped.
func separateTiedOrders(acts []planner.ScheduledActivity) {
	byDay := make(map[int][]int)
	for i, a := range acts {
		byDay[a.DayNumber] = append(byDay[a.DayNumber], i)
	}
	for _, idx := range byDay {
		slices.SortFunc(idx, func(x, y int) int {
			if c := cmp.Compare(acts[x].OrderInDay, acts[y].OrderInDay); c != 0 {
				return c
			}
			return cmp.Compare(acts[x].TempID, acts[y].TempID)
		})
		for k := 1; k < len(idx); k++ {
			if prev := acts[idx[k-1]].OrderInDay; acts[idx[k]].OrderInDay <= prev {
				acts[idx[k]].OrderInDay = prev + 1
			}
		}
	}
}

// dateOnly accepts "2006-01-02" as well as full timestamps.
func dateOnly(s string) string {
	if len(s) > len(planner.DateLayout) {
		return s[:len(planner.DateLayout)]
	}
	return s
}

// trimSeconds turns "09:30:00" into "09:30".
func trimSeconds(s *string) *string {
	if s == nil || len(*s) <= 5 {
		return s
	}
	v := (*s)[:5]
	return &v
}

func activityIDs(p *planner.Plan) []int64 {
	ids := make([]int64, 0, p.Len())
	seen := make(map[int64]bool)
	for _, a := range p.Activities() {
		if !seen[a.ActivityID] {
			seen[a.ActivityID] = true
			ids = append(ids, a.ActivityID)
		}
	}
	return ids
}
