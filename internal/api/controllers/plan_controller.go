package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/planner"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type PlanController struct {
	planningService services.PlanningServiceInterface
}

func NewPlanController(planningService services.PlanningServiceInterface) *PlanController {
	return &PlanController{
		planningService: planningService,
	}
}

func draftIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDraftNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func tempIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("tempId"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return 0, false
	}
	return id, true
}

// CreatePlan godoc
// @Summary Start a new itinerary draft
// @Tags Plans
// @Produce json
// @Success 201 {object} response_models.PlanResponse
// @Security BearerAuth
// @Router /plans [post]
func (p *PlanController) CreatePlan(c *gin.Context) {
	plan, err := p.planningService.CreateDraft(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, plan, "Draft created")
}

// ListPlans godoc
// @Summary List the caller's drafts, most recently edited first
// @Tags Plans
// @Produce json
// @Success 200 {array} response_models.PlanSummary
// @Security BearerAuth
// @Router /plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	plans, err := p.planningService.ListDrafts(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Drafts fetched successfully")
}

func (p *PlanController) GetPlan(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	plan, err := p.planningService.GetDraft(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Draft fetched successfully")
}

func (p *PlanController) DeletePlan(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	if err := p.planningService.AbandonDraft(c.Request.Context(), middleware.UserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Draft discarded")
}

// UpdateTrip godoc
// @Summary Set title, description and trip dates
// @Description Shrinking the dates keeps activities on removed days; they are listed under orphans until moved or removed.
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body request_models.UpdateTripRequest true "Trip info"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{id}/trip [put]
func (p *PlanController) UpdateTrip(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	plan, err := p.planningService.UpdateTripInfo(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Trip updated")
}

func (p *PlanController) SelectDestination(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	var req request_models.SelectDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	plan, err := p.planningService.SelectDestination(c.Request.Context(), middleware.UserID(c), id, req.DestinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Destination selected")
}

func (p *PlanController) SetViewingDay(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	var req request_models.ViewingDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	plan, err := p.planningService.SetViewingDay(c.Request.Context(), middleware.UserID(c), id, req.DayNumber)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Viewing day changed")
}

// AddActivity godoc
// @Summary Add a catalog activity to a day
// @Description Without day_number the activity goes to the end of the day being viewed.
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body request_models.AddActivityRequest true "Activity"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{id}/activities [post]
func (p *PlanController) AddActivity(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	plan, err := p.planningService.AddActivity(c.Request.Context(), middleware.UserID(c), id, req.ActivityID, req.DayNumber)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity added")
}

func (p *PlanController) RemoveActivity(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	tempID, ok := tempIDParam(c)
	if !ok {
		return
	}
	plan, err := p.planningService.RemoveActivity(c.Request.Context(), middleware.UserID(c), id, tempID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity removed")
}

func (p *PlanController) MoveActivity(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	tempID, ok := tempIDParam(c)
	if !ok {
		return
	}
	var req request_models.MoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	plan, err := p.planningService.MoveActivity(c.Request.Context(), middleware.UserID(c), id, tempID, planner.Direction(req.Direction))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity moved")
}

func (p *PlanController) MoveToDay(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	tempID, ok := tempIDParam(c)
	if !ok {
		return
	}
	var req request_models.MoveToDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	plan, err := p.planningService.MoveToDay(c.Request.Context(), middleware.UserID(c), id, tempID, req.DayNumber)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity moved")
}

// SetActivityTime godoc
// @Summary Set or clear the start or end time of an activity
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param tempId path int true "Scheduled activity ID"
// @Param request body request_models.SetActivityTimeRequest true "Slot and HH:MM time, null clears"
// @Success 200 {object} response_models.PlanResponse
// @Security BearerAuth
// @Router /plans/{id}/activities/{tempId}/time [put]
func (p *PlanController) SetActivityTime(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	tempID, ok := tempIDParam(c)
	if !ok {
		return
	}
	var req request_models.SetActivityTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	t, err := planner.ParseOptionalTime(req.Time)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	plan, err := p.planningService.SetActivityTime(c.Request.Context(), middleware.UserID(c), id, tempID, planner.TimeSlot(req.Slot), t)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Activity time updated")
}

func (p *PlanController) GetDay(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}
	res, err := p.planningService.GetDay(c.Request.Context(), middleware.UserID(c), id, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Day fetched successfully")
}

func (p *PlanController) GetPayload(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	payload, err := p.planningService.GetPayload(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, payload, "Payload built")
}

// SubmitPlan godoc
// @Summary Save the draft as an itinerary
// @Description On 502 the draft is kept and the request can be retried.
// @Tags Plans
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} response_models.SubmissionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{id}/submit [post]
func (p *PlanController) SubmitPlan(c *gin.Context) {
	id, ok := draftIDParam(c)
	if !ok {
		return
	}
	res, err := p.planningService.Submit(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, res, "Itinerary saved")
}
