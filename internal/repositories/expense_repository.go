package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"travelplanner/internal/models/db_models"
	"travelplanner/internal/models/request_models"
)

type ExpenseRepositoryInterface interface {
	SaveExpense(ctx context.Context, expense *db_models.Expense) error
	GetExpenseByID(ctx context.Context, expenseID string) (*db_models.Expense, error)
	ListExpenses(ctx context.Context, filter request_models.ExpenseFilter) ([]db_models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) (bool, error)
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(expense).Error
}

func (r *ExpenseRepository) GetExpenseByID(ctx context.Context, expenseID string) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", expenseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) ListExpenses(ctx context.Context, filter request_models.ExpenseFilter) ([]db_models.Expense, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.ItineraryID != "" {
		query = query.Where("itinerary_id = ?", filter.ItineraryID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", db_models.NormalizeExpenseCategory(filter.Category))
	}
	if filter.From != nil {
		query = query.Where("spent_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("spent_at <= ?", *filter.To)
	}

	expenses := make([]db_models.Expense, 0)
	err := query.Order("spent_at ASC").Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Expense{}, "id = ?", expenseID)
	return result.RowsAffected > 0, result.Error
}
