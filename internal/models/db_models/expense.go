package db_models

import (
	"strings"
	"time"
)

const DefaultExpenseCategory = "Other"

var ExpenseCategories = []string{
	"Food",
	"Accommodation",
	"Transportation",
	"Attractions",
	"Shopping",
	"Entertainment",
	DefaultExpenseCategory,
}

// NormalizeExpenseCategory maps a free-form category onto a known one, case-insensitively.
func NormalizeExpenseCategory(category string) string {
	for _, known := range ExpenseCategories {
		if strings.EqualFold(known, strings.TrimSpace(category)) {
			return known
		}
	}
	return DefaultExpenseCategory
}

type Expense struct {
	BaseModel
	UserID      string    `json:"userId" gorm:"column:user_id;type:text;index:idx_expenses_user_id"`
	ItineraryID string    `json:"itineraryId,omitempty" gorm:"column:itinerary_id;type:text;index:idx_expenses_itinerary_id"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Amount      float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	Category    string    `json:"category" gorm:"type:text;not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"column:spent_at;type:timestamptz"`
}

func (Expense) TableName() string { return "expenses" }

func (e *Expense) GetID() string { return e.ID }

func (e *Expense) Clone() *Expense {
	cp := *e
	return &cp
}
