package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, message string, details string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		Details: details,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service errors onto HTTP responses.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		RespondError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, ErrInvalidExpense):
		RespondError(c, http.StatusBadRequest, "Invalid expense", err.Error())
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Travel plan not found", "")
	case errors.Is(err, ErrExpenseNotFound):
		RespondError(c, http.StatusNotFound, "Expense not found", "")
	case errors.Is(err, ErrUpstream):
		logger.Warn("upstream call failed", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Failed to generate travel plan", err.Error())
	case errors.Is(err, ErrMalformedUpstreamResponse), errors.Is(err, ErrInvalidPlanShape):
		logger.Warn("could not parse AI response", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Failed to parse AI response", err.Error())
	default:
		logger.Error("unhandled service error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
