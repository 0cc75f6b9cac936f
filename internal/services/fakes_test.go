package services

import (
	"context"
	"errors"
	"sync"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/remote"
)

var errBoom = errors.New("boom")

type fakeCatalogSource struct {
	mu           sync.Mutex
	destinations []response_models.Destination
	activities   map[int64][]response_models.Activity
	fail         bool
	calls        int
	// beforeReturn runs inside ListActivitiesByCountry, after the lookup.
	beforeReturn func(countryID int64)
	likes        map[int64]bool
}

func (f *fakeCatalogSource) ListDestinations(ctx context.Context) ([]response_models.Destination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return nil, errBoom
	}
	return f.destinations, nil
}

func (f *fakeCatalogSource) ListActivitiesByCountry(ctx context.Context, countryID int64) ([]response_models.Activity, error) {
	f.mu.Lock()
	f.calls++
	fail, out, hook := f.fail, f.activities[countryID], f.beforeReturn
	f.mu.Unlock()
	if hook != nil {
		hook(countryID)
	}
	if fail {
		return nil, errBoom
	}
	return out, nil
}

func (f *fakeCatalogSource) ListRecommendedActivities(ctx context.Context, userID, countryID int64) ([]response_models.Activity, error) {
	if f.fail {
		return nil, errBoom
	}
	acts := f.activities[countryID]
	if len(acts) > 1 {
		acts = acts[:1]
	}
	return acts, nil
}

func (f *fakeCatalogSource) SetActivityLiked(ctx context.Context, userID, activityID int64, liked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errBoom
	}
	if f.likes == nil {
		f.likes = make(map[int64]bool)
	}
	f.likes[activityID] = liked
	return nil
}

type fakeItineraryStore struct {
	itineraries []response_models.Itinerary
	activities  map[int64][]response_models.ItineraryActivity
	fail        bool

	created  []request_models.CreateItineraryRequest
	modified []request_models.ModifyItineraryRequest
	// inFlight runs inside Create and Modify before they answer.
	inFlight func()
}

func (f *fakeItineraryStore) ListItinerariesForUser(ctx context.Context, userID int64) ([]response_models.Itinerary, error) {
	if f.fail {
		return nil, errBoom
	}
	var out []response_models.Itinerary
	for _, it := range f.itineraries {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItineraryStore) ListActivitiesForItinerary(ctx context.Context, itineraryID int64) ([]response_models.ItineraryActivity, error) {
	if f.fail {
		return nil, errBoom
	}
	return f.activities[itineraryID], nil
}

func (f *fakeItineraryStore) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.Itinerary, error) {
	if f.fail {
		return nil, errBoom
	}
	f.created = append(f.created, req)
	if hook := f.inFlight; hook != nil {
		f.inFlight = nil
		hook()
	}
	return &response_models.Itinerary{ID: 100, UserID: req.UserID, Title: req.Title}, nil
}

func (f *fakeItineraryStore) ModifyItinerary(ctx context.Context, req request_models.ModifyItineraryRequest) (*response_models.Itinerary, error) {
	if f.fail {
		return nil, errBoom
	}
	f.modified = append(f.modified, req)
	if hook := f.inFlight; hook != nil {
		f.inFlight = nil
		hook()
	}
	return &response_models.Itinerary{ID: req.ID, Title: req.Title}, nil
}

type fakePersonalityStore struct {
	saved    *response_models.Personality
	notFound bool
}

func (f *fakePersonalityStore) CreatePersonality(ctx context.Context, p response_models.Personality) error {
	f.saved = &p
	return nil
}

func (f *fakePersonalityStore) GetPersonality(ctx context.Context, userID int64) (*response_models.Personality, error) {
	if f.notFound || f.saved == nil {
		return nil, &remote.StatusError{Code: 404, Method: "GET", Path: "/personality"}
	}
	return f.saved, nil
}

func kyotoActivities() []response_models.Activity {
	return []response_models.Activity{
		{ID: 1, Name: "Fushimi Inari", Title: "Shrine walk", Price: 10, CountryID: 7},
		{ID: 2, Name: "Tea ceremony", Title: "Matcha", Price: 20, CountryID: 7},
		{ID: 3, Name: "Nishiki market", Title: "Street food", Price: 5, CountryID: 7},
	}
}
