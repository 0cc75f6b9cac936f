package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type PersonalityController struct {
	personalityService services.PersonalityServiceInterface
}

func NewPersonalityController(personalityService services.PersonalityServiceInterface) *PersonalityController {
	return &PersonalityController{personalityService: personalityService}
}

func (p *PersonalityController) GetQuiz(c *gin.Context) {
	utils.RespondSuccess(c, p.personalityService.Quiz(), "Quiz fetched successfully")
}

// SubmitQuiz godoc
// @Summary Score the personality quiz and store the result
// @Tags Personality
// @Accept json
// @Produce json
// @Param request body request_models.QuizAnswersRequest true "Answers keyed by question id, 1..5"
// @Success 201 {object} response_models.PersonalityProfile
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz [post]
func (p *PersonalityController) SubmitQuiz(c *gin.Context) {
	var req request_models.QuizAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	profile, err := p.personalityService.Submit(c.Request.Context(), middleware.UserID(c), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, profile, "Personality saved")
}

func (p *PersonalityController) GetPersonality(c *gin.Context) {
	profile, err := p.personalityService.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Personality fetched successfully")
}
