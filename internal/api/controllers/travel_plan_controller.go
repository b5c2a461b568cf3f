package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelplanner/internal/models/db_models"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

type TravelPlanController struct {
	planService       services.PlanServiceInterface
	generationService services.GenerationServiceInterface
	logger            *zap.Logger
}

func NewTravelPlanController(
	planService services.PlanServiceInterface,
	generationService services.GenerationServiceInterface,
	logger *zap.Logger,
) *TravelPlanController {
	return &TravelPlanController{
		planService:       planService,
		generationService: generationService,
		logger:            logger,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel plan with the LLM
// @Description Body is a string, {request, apiKey?, userId?}, or a flat object carrying apiKey
// @Tags Plans
// @Accept json
// @Produce json
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/generate-plan [post]
func (t *TravelPlanController) GeneratePlan(c *gin.Context) {
	var payload any
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	plan, err := t.generationService.GeneratePlan(c.Request.Context(), payload, c.GetHeader(userIDHeader))
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, plan)
}

// ListPlans godoc
// @Summary List the caller's travel plans
// @Param x-user-id header string false "Owner"
// @Param userId query string false "Owner"
// @Router /api/travel-plans [get]
func (t *TravelPlanController) ListPlans(c *gin.Context) {
	plans, _, err := t.planService.ListPlans(c.Request.Context(), requestUserID(c))
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, plans)
}

// ListPlansByUser godoc
// @Summary List a user's travel plans, newest first
// @Router /api/travel-plans/user/{userId} [get]
func (t *TravelPlanController) ListPlansByUser(c *gin.Context) {
	plans, _, err := t.planService.ListPlansByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, plans)
}

func (t *TravelPlanController) GetPlan(c *gin.Context) {
	plan, err := t.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, plan)
}

// CreatePlan godoc
// @Summary Save a travel plan
// @Accept json
// @Success 201 {object} response_models.PlanResponse
// @Router /api/travel-plans [post]
func (t *TravelPlanController) CreatePlan(c *gin.Context) {
	var plan db_models.TravelPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if owner := requestUserID(c); owner != "" {
		plan.UserID = owner
	}

	saved, err := t.planService.SavePlan(c.Request.Context(), &plan)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, saved)
}

// UpdatePlan godoc
// @Summary Merge the listed fields into a travel plan
// @Router /api/travel-plans/{id} [put]
func (t *TravelPlanController) UpdatePlan(c *gin.Context) {
	var patch request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := t.planService.UpdatePlan(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, updated)
}

func (t *TravelPlanController) DeletePlan(c *gin.Context) {
	deleted, err := t.planService.DeletePlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, deleted)
}
