package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"travelplanner/internal/models/db_models"
	"travelplanner/internal/models/request_models"
	"travelplanner/internal/repositories"
	"travelplanner/pkg/utils"
)

var errDurableDown = errors.New("connection refused")

// mockPlanRepo is a hand-written double for repositories.IPlanRepository.
// Unset fields fail the operation with errDurableDown.
type mockPlanRepo struct {
	create func(ctx context.Context, plan *db_models.TravelPlan) error
	get    func(ctx context.Context, id string) (*db_models.TravelPlan, error)
	list   func(ctx context.Context, userID string, newestFirst bool) ([]db_models.TravelPlan, error)
	save   func(ctx context.Context, plan *db_models.TravelPlan) error
	delete func(ctx context.Context, id string) (bool, error)
}

func (m *mockPlanRepo) CreatePlan(ctx context.Context, plan *db_models.TravelPlan) error {
	if m.create == nil {
		return errDurableDown
	}
	return m.create(ctx, plan)
}
func (m *mockPlanRepo) GetPlanByID(ctx context.Context, id string) (*db_models.TravelPlan, error) {
	if m.get == nil {
		return nil, errDurableDown
	}
	return m.get(ctx, id)
}
func (m *mockPlanRepo) ListPlansByUser(ctx context.Context, userID string, newestFirst bool) ([]db_models.TravelPlan, error) {
	if m.list == nil {
		return nil, errDurableDown
	}
	return m.list(ctx, userID, newestFirst)
}
func (m *mockPlanRepo) SavePlan(ctx context.Context, plan *db_models.TravelPlan) error {
	if m.save == nil {
		return errDurableDown
	}
	return m.save(ctx, plan)
}
func (m *mockPlanRepo) DeletePlan(ctx context.Context, id string) (bool, error) {
	if m.delete == nil {
		return false, errDurableDown
	}
	return m.delete(ctx, id)
}

var _ repositories.IPlanRepository = (*mockPlanRepo)(nil)

type mockExpenseRepo struct {
	save   func(ctx context.Context, e *db_models.Expense) error
	get    func(ctx context.Context, id string) (*db_models.Expense, error)
	list   func(ctx context.Context, filter request_models.ExpenseFilter) ([]db_models.Expense, error)
	delete func(ctx context.Context, id string) (bool, error)
}

func (m *mockExpenseRepo) SaveExpense(ctx context.Context, e *db_models.Expense) error {
	if m.save == nil {
		return errDurableDown
	}
	return m.save(ctx, e)
}
func (m *mockExpenseRepo) GetExpenseByID(ctx context.Context, id string) (*db_models.Expense, error) {
	if m.get == nil {
		return nil, errDurableDown
	}
	return m.get(ctx, id)
}
func (m *mockExpenseRepo) ListExpenses(ctx context.Context, filter request_models.ExpenseFilter) ([]db_models.Expense, error) {
	if m.list == nil {
		return nil, errDurableDown
	}
	return m.list(ctx, filter)
}
func (m *mockExpenseRepo) DeleteExpense(ctx context.Context, id string) (bool, error) {
	if m.delete == nil {
		return false, errDurableDown
	}
	return m.delete(ctx, id)
}

var _ repositories.ExpenseRepositoryInterface = (*mockExpenseRepo)(nil)

// mockChat records every call so tests can assert that no request left the process.
type mockChat struct {
	mu       sync.Mutex
	complete func(ctx context.Context, apiKey, prompt string) (string, error)
	calls    []chatCall
}

type chatCall struct {
	apiKey string
	prompt string
}

func (m *mockChat) Complete(ctx context.Context, apiKey, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, chatCall{apiKey: apiKey, prompt: prompt})
	m.mu.Unlock()
	return m.complete(ctx, apiKey, prompt)
}
func (m *mockChat) Provider() string { return "mock" }
func (m *mockChat) Model() string    { return "mock-model" }

var _ utils.ChatClientInterface = (*mockChat)(nil)

// stepClock makes utils.NowUTC return t0, t0+1m, t0+2m, ... for the duration of the test.
func stepClock(t *testing.T, t0 time.Time) {
	t.Helper()
	original := utils.NowUTC
	var mu sync.Mutex
	next := t0
	utils.NowUTC = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Minute)
		return now
	}
	t.Cleanup(func() { utils.NowUTC = original })
}
