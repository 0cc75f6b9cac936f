package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
)

type stubCatalog struct{}

func (stubCatalog) ListDestinations(ctx context.Context) []response_models.Destination {
	return []response_models.Destination{{ID: 7, Name: "Japan"}}
}

func (stubCatalog) ListActivitiesByDestination(ctx context.Context, id int64) []response_models.Activity {
	if id != 7 {
		return []response_models.Activity{}
	}
	return []response_models.Activity{
		{ID: 1, Name: "Shrine", Price: 10, CountryID: 7},
		{ID: 2, Name: "Tea", Price: 20, CountryID: 7},
	}
}

func (stubCatalog) ListRecommendedActivities(ctx context.Context, userID, id int64) []response_models.Activity {
	return []response_models.Activity{}
}

type stubItineraries struct {
	fail bool
}

func (s *stubItineraries) ListItinerariesForUser(ctx context.Context, userID int64) ([]response_models.Itinerary, error) {
	return []response_models.Itinerary{{ID: 1, UserID: userID, Title: "Saved"}}, nil
}

func (s *stubItineraries) ListActivitiesForItinerary(ctx context.Context, id int64) ([]response_models.ItineraryActivity, error) {
	return nil, nil
}

func (s *stubItineraries) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.Itinerary, error) {
	if s.fail {
		return nil, errors.New("connection refused")
	}
	return &response_models.Itinerary{ID: 77, UserID: req.UserID, Title: req.Title}, nil
}

func (s *stubItineraries) ModifyItinerary(ctx context.Context, req request_models.ModifyItineraryRequest) (*response_models.Itinerary, error) {
	return &response_models.Itinerary{ID: req.ID}, nil
}

// asUser stands in for the JWT middleware.
func asUser(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

func newPlanRouter(t *testing.T, user int64, itineraries *stubItineraries) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := services.NewPlanningService(repositories.NewMemoryDraftRepository(), stubCatalog{}, itineraries, zap.NewNop())
	pc := NewPlanController(svc)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	g := r.Group("/plans", asUser(user))
	g.POST("", pc.CreatePlan)
	g.GET("", pc.ListPlans)
	g.GET("/:id", pc.GetPlan)
	g.DELETE("/:id", pc.DeletePlan)
	g.PUT("/:id/trip", pc.UpdateTrip)
	g.PUT("/:id/destination", pc.SelectDestination)
	g.PUT("/:id/viewing-day", pc.SetViewingDay)
	g.POST("/:id/activities", pc.AddActivity)
	g.DELETE("/:id/activities/:tempId", pc.RemoveActivity)
	g.POST("/:id/activities/:tempId/move", pc.MoveActivity)
	g.POST("/:id/activities/:tempId/day", pc.MoveToDay)
	g.PUT("/:id/activities/:tempId/time", pc.SetActivityTime)
	g.GET("/:id/days/:day", pc.GetDay)
	g.GET("/:id/payload", pc.GetPayload)
	g.POST("/:id/submit", pc.SubmitPlan)
	return r
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decodePlan(t *testing.T, env envelope) response_models.PlanResponse {
	t.Helper()
	var plan response_models.PlanResponse
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	return plan
}

func TestPlanController_FullFlow(t *testing.T) {
	r := newPlanRouter(t, 5, &stubItineraries{})

	code, env := call(t, r, http.MethodPost, "/plans", nil)
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, env.TraceID)
	base := "/plans/" + decodePlan(t, env).ID

	code, _ = call(t, r, http.MethodPut, base+"/trip", gin.H{"title": "Japan", "start_date": "2025-01-01", "end_date": "2025-01-02"})
	require.Equal(t, http.StatusOK, code)
	code, env = call(t, r, http.MethodPut, base+"/destination", gin.H{"destination_id": 7})
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodePlan(t, env).Catalog, 2)

	code, _ = call(t, r, http.MethodPost, base+"/activities", gin.H{"activity_id": 1})
	require.Equal(t, http.StatusOK, code)
	code, env = call(t, r, http.MethodPost, base+"/activities", gin.H{"activity_id": 2, "day_number": 1})
	require.Equal(t, http.StatusOK, code)
	plan := decodePlan(t, env)
	require.Len(t, plan.Days[0].Activities, 2)
	tea := plan.Days[0].Activities[1].TempID

	code, env = call(t, r, http.MethodPost, base+"/activities/"+itoa(tea)+"/move", gin.H{"direction": "up"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, tea, decodePlan(t, env).Days[0].Activities[0].TempID)

	code, env = call(t, r, http.MethodPut, base+"/activities/"+itoa(tea)+"/time", gin.H{"slot": "start", "time": "10:00"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10:00", *decodePlan(t, env).Days[0].Activities[0].StartTime)

	code, env = call(t, r, http.MethodPost, base+"/activities/"+itoa(tea)+"/day", gin.H{"day_number": 2})
	require.Equal(t, http.StatusOK, code)
	plan = decodePlan(t, env)
	assert.Equal(t, 10.0, plan.Days[0].Total)
	assert.Equal(t, 20.0, plan.Days[1].Total)
	assert.Equal(t, 30.0, plan.TripTotal)

	code, env = call(t, r, http.MethodGet, base+"/payload", nil)
	require.Equal(t, http.StatusOK, code)
	var payload request_models.CreateItineraryRequest
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Len(t, payload.Activities, 2)

	code, env = call(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusCreated, code)
	var res response_models.SubmissionResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, int64(77), res.Itinerary.ID)

	code, _ = call(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPlanController_ValidationErrors(t *testing.T) {
	r := newPlanRouter(t, 5, &stubItineraries{})
	_, env := call(t, r, http.MethodPost, "/plans", nil)
	base := "/plans/" + decodePlan(t, env).ID

	code, env := call(t, r, http.MethodPut, base+"/trip", gin.H{"title": "x", "start_date": "2025-01-05", "end_date": "2025-01-01"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "end date")

	code, _ = call(t, r, http.MethodPost, base+"/activities", gin.H{"activity_id": 1})
	assert.Equal(t, http.StatusBadRequest, code, "empty catalog")

	code, _ = call(t, r, http.MethodPut, base+"/viewing-day", gin.H{"day_number": 3})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, r, http.MethodPost, base+"/activities/1/move", gin.H{"direction": "sideways"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, r, http.MethodPut, base+"/activities/1/time", gin.H{"slot": "start", "time": "9am"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = call(t, r, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Len(t, fields, 2)
}

func TestPlanController_UnknownDraft(t *testing.T) {
	r := newPlanRouter(t, 5, &stubItineraries{})

	code, _ := call(t, r, http.MethodGet, "/plans/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = call(t, r, http.MethodGet, "/plans/6f1c2f44-6a0e-4d0c-9a43-2f0c1b7e9d11", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPlanController_SubmitFailureIsRetryable(t *testing.T) {
	itineraries := &stubItineraries{fail: true}
	r := newPlanRouter(t, 5, itineraries)
	_, env := call(t, r, http.MethodPost, "/plans", nil)
	base := "/plans/" + decodePlan(t, env).ID
	call(t, r, http.MethodPut, base+"/trip", gin.H{"title": "Japan", "start_date": "2025-01-01", "end_date": "2025-01-01"})
	call(t, r, http.MethodPut, base+"/destination", gin.H{"destination_id": 7})

	code, _ := call(t, r, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, code)

	itineraries.fail = false
	code, _ = call(t, r, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusCreated, code)
}
