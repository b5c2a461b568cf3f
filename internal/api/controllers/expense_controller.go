package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/services"
	"travelplanner/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
	logger         *zap.Logger
}

func NewExpenseController(expenseService services.ExpenseServiceInterface, logger *zap.Logger) *ExpenseController {
	return &ExpenseController{expenseService: expenseService, logger: logger}
}

func (e *ExpenseController) ListExpenses(c *gin.Context) {
	filter, err := expenseFilter(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}

	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, e.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, expenses)
}

func (e *ExpenseController) Summary(c *gin.Context) {
	filter, err := expenseFilter(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}

	summary, err := e.expenseService.Summary(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, e.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, summary)
}

func (e *ExpenseController) AddExpense(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if owner := requestUserID(c); owner != "" {
		req.UserID = owner
	}

	created, err := e.expenseService.AddExpense(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, e.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, created)
}

func (e *ExpenseController) UpdateExpense(c *gin.Context) {
	var patch request_models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := e.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		utils.HandleServiceError(c, e.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, updated)
}

func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	deleted, err := e.expenseService.DeleteExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, e.logger, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, deleted)
}

func expenseFilter(c *gin.Context) (request_models.ExpenseFilter, error) {
	filter := request_models.ExpenseFilter{
		UserID:      requestUserID(c),
		ItineraryID: c.Query("itineraryId"),
		Category:    c.Query("category"),
	}

	var err error
	if filter.From, err = optionalDate(c.Query("from")); err != nil {
		return filter, fmt.Errorf("from: %w", err)
	}
	if filter.To, err = optionalDate(c.Query("to")); err != nil {
		return filter, fmt.Errorf("to: %w", err)
	}
	return filter, nil
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParseISODate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
