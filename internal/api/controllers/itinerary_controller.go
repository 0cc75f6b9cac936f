package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	planningService services.PlanningServiceInterface
}

func NewItineraryController(planningService services.PlanningServiceInterface) *ItineraryController {
	return &ItineraryController{planningService: planningService}
}

func itineraryParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary id")
		return 0, false
	}
	return id, true
}

func (i *ItineraryController) ListItineraries(c *gin.Context) {
	itineraries, err := i.planningService.ListItineraries(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

func (i *ItineraryController) ListActivities(c *gin.Context) {
	id, ok := itineraryParam(c)
	if !ok {
		return
	}
	activities, err := i.planningService.GetItineraryActivities(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// EditItinerary godoc
// @Summary Open a saved itinerary as a draft
// @Description Submitting the returned draft updates the itinerary in place.
// @Tags Itineraries
// @Produce json
// @Param id path int true "Itinerary ID"
// @Success 201 {object} response_models.PlanResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/edit [post]
func (i *ItineraryController) EditItinerary(c *gin.Context) {
	id, ok := itineraryParam(c)
	if !ok {
		return
	}
	plan, err := i.planningService.LoadItineraryForEdit(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, plan, "Draft created from itinerary")
}
