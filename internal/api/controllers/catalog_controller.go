package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

// CatalogController serves destinations and their activities. Lookups that
// fail upstream answer with an empty list.
type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func destinationParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination id")
		return 0, false
	}
	return id, true
}

func (cc *CatalogController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, cc.catalogService.ListDestinations(c.Request.Context()), "Destinations fetched successfully")
}

func (cc *CatalogController) ListActivities(c *gin.Context) {
	id, ok := destinationParam(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, cc.catalogService.ListActivitiesByDestination(c.Request.Context(), id), "Activities fetched successfully")
}

func (cc *CatalogController) ListRecommended(c *gin.Context) {
	id, ok := destinationParam(c)
	if !ok {
		return
	}
	activities := cc.catalogService.ListRecommendedActivities(c.Request.Context(), middleware.UserID(c), id)
	utils.RespondSuccess(c, activities, "Recommended activities fetched successfully")
}

// LikeActivity godoc
// @Summary Like or unlike an activity; likes shape the recommended list
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path int true "Destination id"
// @Param activityId path int true "Activity id"
// @Param body body request_models.LikeActivityRequest true "Like flag"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/{id}/activities/{activityId}/like [put]
func (cc *CatalogController) LikeActivity(c *gin.Context) {
	id, ok := destinationParam(c)
	if !ok {
		return
	}
	activityID, err := strconv.ParseInt(c.Param("activityId"), 10, 64)
	if err != nil || activityID <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity id")
		return
	}
	var req request_models.LikeActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	if err := cc.catalogService.LikeActivity(c.Request.Context(), middleware.UserID(c), id, activityID, *req.Liked); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	msg := "Activity unliked"
	if *req.Liked {
		msg = "Activity liked"
	}
	utils.RespondSuccess(c, gin.H{"activity_id": activityID, "liked": *req.Liked}, msg)
}
