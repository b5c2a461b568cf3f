package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"travelplanner/internal/models/db_models"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/models/response_models"
	"travelplanner/internal/repositories"
	mem "travelplanner/pkg/memcache"
	"travelplanner/pkg/metrics"
	"travelplanner/pkg/utils"
)

type ExpenseServiceInterface interface {
	AddExpense(ctx context.Context, req request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error)
	ListExpenses(ctx context.Context, filter request_models.ExpenseFilter) ([]db_models.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, patch request_models.UpdateExpenseRequest) (*response_models.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, expenseID string) (*response_models.DeleteResponse, error)
	Summary(ctx context.Context, filter request_models.ExpenseFilter) (*response_models.ExpenseSummary, error)
}

// ExpenseService follows the same memory-first, durable-mirrored policy as PlanService.
type ExpenseService struct {
	durable repositories.ExpenseRepositoryInterface // nil when Supabase is not configured
	memory  *mem.ExpenseCache
	logger  *zap.Logger
}

func NewExpenseService(durable repositories.ExpenseRepositoryInterface, memory *mem.ExpenseCache, logger *zap.Logger) ExpenseServiceInterface {
	return &ExpenseService{durable: durable, memory: memory, logger: logger.Named("expenses")}
}

func validateExpense(e *db_models.Expense) error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: description is required", utils.ErrInvalidExpense)
	}
	if e.Amount <= 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return fmt.Errorf("%w: amount must be greater than 0", utils.ErrInvalidExpense)
	}
	return nil
}

func (s *ExpenseService) AddExpense(ctx context.Context, req request_models.CreateExpenseRequest) (*response_models.ExpenseResponse, error) {
	now := utils.NowUTC()
	expense := &db_models.Expense{
		UserID:      req.UserID,
		ItineraryID: strings.TrimSpace(req.ItineraryID),
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Category:    db_models.NormalizeExpenseCategory(req.Category),
		Timestamp:   now,
	}
	if expense.UserID == "" {
		expense.UserID = db_models.AnonymousUserID
	}
	if req.Timestamp != nil {
		expense.Timestamp = req.Timestamp.UTC()
	}
	if err := validateExpense(expense); err != nil {
		return nil, err
	}
	expense.Stamp(utils.NewExpenseID(), now)

	return s.write(ctx, "create", expense), nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, filter request_models.ExpenseFilter) ([]db_models.Expense, error) {
	if filter.UserID == "" {
		filter.UserID = db_models.AnonymousUserID
	}

	if s.durable != nil {
		expenses, err := s.durable.ListExpenses(ctx, filter)
		if err == nil {
			return expenses, nil
		}
		s.degraded("list", filter.UserID, err)
	}

	cached := s.memory.Filter(filter.Matches)
	expenses := make([]db_models.Expense, 0, len(cached))
	for _, e := range cached {
		expenses = append(expenses, *e)
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Timestamp.Before(expenses[j].Timestamp)
	})
	return expenses, nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, patch request_models.UpdateExpenseRequest) (*response_models.ExpenseResponse, error) {
	expense, ok := s.memory.Get(expenseID)
	if !ok && s.durable != nil {
		found, err := s.durable.GetExpenseByID(ctx, expenseID)
		if err != nil {
			s.degraded("get", expenseID, err)
		}
		if found != nil {
			expense, ok = found, true
		}
	}
	if !ok {
		return nil, fmt.Errorf("update expense %s: %w", expenseID, utils.ErrExpenseNotFound)
	}

	patch.Apply(expense)
	if err := validateExpense(expense); err != nil {
		return nil, err
	}
	expense.Touch(utils.NowUTC())

	return s.write(ctx, "update", expense), nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) (*response_models.DeleteResponse, error) {
	inMemory := s.memory.Remove(expenseID)

	inDurable := false
	if s.durable != nil {
		deleted, err := s.durable.DeleteExpense(ctx, expenseID)
		if err != nil {
			s.degraded("delete", expenseID, err)
		} else {
			inDurable = deleted
		}
	}

	if !inMemory && !inDurable {
		return nil, fmt.Errorf("delete expense %s: %w", expenseID, utils.ErrExpenseNotFound)
	}

	return &response_models.DeleteResponse{
		Message: "Expense deleted successfully",
		ID:      expenseID,
		Storage: response_models.Removed(inDurable, inMemory),
	}, nil
}

// Summary totals the matching expenses overall and per category.
func (s *ExpenseService) Summary(ctx context.Context, filter request_models.ExpenseFilter) (*response_models.ExpenseSummary, error) {
	expenses, err := s.ListExpenses(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &response_models.ExpenseSummary{
		Categories:     make([]string, 0),
		CategoryTotals: make(map[string]float64),
		Count:          len(expenses),
	}
	for _, e := range expenses {
		summary.Total += e.Amount
		if _, seen := summary.CategoryTotals[e.Category]; !seen {
			summary.Categories = append(summary.Categories, e.Category)
		}
		summary.CategoryTotals[e.Category] += e.Amount
	}
	return summary, nil
}

func (s *ExpenseService) write(ctx context.Context, op string, expense *db_models.Expense) *response_models.ExpenseResponse {
	s.memory.Upsert(expense)

	result := response_models.MemoryOnly()
	if s.durable != nil {
		if err := s.durable.SaveExpense(ctx, expense); err != nil {
			s.degraded(op, expense.ID, err)
		} else {
			result = response_models.DurableAndMemory()
		}
	}
	return &response_models.ExpenseResponse{Expense: *expense, Storage: result}
}

func (s *ExpenseService) degraded(op string, key string, err error) {
	metrics.StorageFallbacks.WithLabelValues("expense", op).Inc()
	s.logger.Warn("durable store unavailable, using in-memory list",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(err))
}
