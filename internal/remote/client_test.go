package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/middleware"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, nil)
}

func TestListActivitiesByCountry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("country_id"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Temple","title":"Old temple","imageurl":"x.png","countryid":7,"address":"a","price":12.5}]`))
	})

	got, err := c.ListActivitiesByCountry(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].CountryID)
	assert.Equal(t, "x.png", got[0].ImageURL)
	assert.Equal(t, 12.5, got[0].Price)
}

func TestRecommendedActivitiesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("user_id"))
		assert.Equal(t, "7", r.URL.Query().Get("country_id"))
		_, _ = w.Write([]byte(`{"activities":[{"id":4,"name":"Hike"}]}`))
	})

	got, err := c.ListRecommendedActivities(context.Background(), 3, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hike", got[0].Name)
}

func TestCreateItinerary_SendsPayloadAndToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body request_models.CreateItineraryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(9), body.UserID)
		assert.Len(t, body.Activities, 1)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"id":55,"user_id":9,"title":"T"}}`))
	})

	ctx := middleware.WithBearerToken(context.Background(), "tok")
	it, err := c.CreateItinerary(ctx, request_models.CreateItineraryRequest{
		UserID:     9,
		Title:      "T",
		Activities: []request_models.ActivityScheduleInput{{ActivityID: 1, DayNumber: 1, OrderInDay: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(55), it.ID)
}

func TestModifyItinerary(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "5", r.URL.Query().Get("itinerary_id"))
		_, _ = w.Write([]byte(`{"message":"updated","itinerary":{"id":5,"title":"New"}}`))
	})

	it, err := c.ModifyItinerary(context.Background(), request_models.ModifyItineraryRequest{ID: 5, Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", it.Title)
}

func TestSetActivityLiked(t *testing.T) {
	tests := []struct {
		name  string
		liked bool
	}{
		{"like", true},
		{"unlike", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/activity", r.URL.Path)
				assert.Equal(t, "3", r.URL.Query().Get("user_id"))
				assert.Equal(t, "11", r.URL.Query().Get("activity_id"))

				var body map[string]bool
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, map[string]bool{"liked": tt.liked}, body)
				_, _ = w.Write([]byte(`{"message":"activity successfully liked"}`))
			})

			require.NoError(t, c.SetActivityLiked(context.Background(), 3, 11, tt.liked))
		})
	}
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such user", http.StatusNotFound)
	})

	_, err := c.GetPersonality(context.Background(), 1)
	require.Error(t, err)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, "no such user", se.Body)
	assert.True(t, IsNotFound(err))
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, nil)
	_, err := c.ListDestinations(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	})
	c.HTTP.Timeout = 50 * time.Millisecond

	_, err := c.ListDestinations(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestNoTokenWithoutContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})
	got, err := c.ListDestinations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
