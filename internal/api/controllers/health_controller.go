package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelplanner/internal/models/response_models"
	"travelplanner/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health is a liveness check only; it does not touch the database or the LLM.
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"status":  "OK",
		"message": "AI Travel Planner Backend is running!",
	})
}

type SettingsController struct {
	status response_models.SettingsStatus
}

func NewSettingsController(status response_models.SettingsStatus) *SettingsController {
	return &SettingsController{status: status}
}

// Status reports which integrations the server was started with. Secrets are never echoed.
func (s *SettingsController) Status(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, s.status)
}
