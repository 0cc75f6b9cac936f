package remote

import (
	"context"
	"net/http"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
)

func (c *Client) ListDestinations(ctx context.Context) ([]response_models.Destination, error) {
	var out []response_models.Destination
	if err := c.do(ctx, http.MethodGet, "/country", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListActivitiesByCountry(ctx context.Context, countryID int64) ([]response_models.Activity, error) {
	var out []response_models.Activity
	q := idQuery("country_id", countryID)
	if err := c.do(ctx, http.MethodGet, "/activity", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type activitiesEnvelope struct {
	Activities []response_models.Activity `json:"activities"`
}

// ListRecommendedActivities returns the activities the trip API ranks for the
// user's personality within one country.
func (c *Client) ListRecommendedActivities(ctx context.Context, userID, countryID int64) ([]response_models.Activity, error) {
	var env activitiesEnvelope
	q := idQuery("user_id", userID, "country_id", countryID)
	if err := c.do(ctx, http.MethodGet, "/activity", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Activities, nil
}

func (c *Client) ListActivitiesForItinerary(ctx context.Context, itineraryID int64) ([]response_models.ItineraryActivity, error) {
	var env struct {
		Activities []response_models.ItineraryActivity `json:"activities"`
	}
	q := idQuery("itinerary_id", itineraryID)
	if err := c.do(ctx, http.MethodGet, "/activity", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Activities, nil
}

func (c *Client) ListItinerariesForUser(ctx context.Context, userID int64) ([]response_models.Itinerary, error) {
	var out []response_models.Itinerary
	if err := c.do(ctx, http.MethodGet, "/itinerary", idQuery("user_id", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.Itinerary, error) {
	var env struct {
		Success bool                       `json:"success"`
		Message string                     `json:"message"`
		Data    *response_models.Itinerary `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/itinerary", nil, req, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) ModifyItinerary(ctx context.Context, req request_models.ModifyItineraryRequest) (*response_models.Itinerary, error) {
	var env struct {
		Message   string                     `json:"message"`
		Itinerary *response_models.Itinerary `json:"itinerary"`
	}
	q := idQuery("itinerary_id", req.ID)
	if err := c.do(ctx, http.MethodPut, "/itinerary", q, req, &env); err != nil {
		return nil, err
	}
	return env.Itinerary, nil
}

// SetActivityLiked records or clears the user's like on an activity. Likes
// feed the recommended ranking.
func (c *Client) SetActivityLiked(ctx context.Context, userID, activityID int64, liked bool) error {
	q := idQuery("user_id", userID, "activity_id", activityID)
	body := struct {
		Liked bool `json:"liked"`
	}{liked}
	return c.do(ctx, http.MethodPut, "/activity", q, body, nil)
}

func (c *Client) CreatePersonality(ctx context.Context, p response_models.Personality) error {
	return c.do(ctx, http.MethodPost, "/personality", nil, p, nil)
}

func (c *Client) GetPersonality(ctx context.Context, userID int64) (*response_models.Personality, error) {
	var out response_models.Personality
	if err := c.do(ctx, http.MethodGet, "/personality", idQuery("user_id", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
