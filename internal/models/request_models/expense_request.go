package request_models

import (
	"time"

	"travelplanner/internal/models/db_models"
)

type CreateExpenseRequest struct {
	UserID      string     `json:"userId"`
	ItineraryID string     `json:"itineraryId"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Timestamp   *time.Time `json:"timestamp"`
}

type UpdateExpenseRequest struct {
	ItineraryID *string    `json:"itineraryId"`
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount"`
	Category    *string    `json:"category"`
	Timestamp   *time.Time `json:"timestamp"`
}

func (r UpdateExpenseRequest) Apply(e *db_models.Expense) {
	if r.ItineraryID != nil {
		e.ItineraryID = *r.ItineraryID
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.Category != nil {
		e.Category = db_models.NormalizeExpenseCategory(*r.Category)
	}
	if r.Timestamp != nil {
		e.Timestamp = *r.Timestamp
	}
}

// ExpenseFilter narrows expense listings. Zero values match everything except UserID,
// which always scopes the result.
type ExpenseFilter struct {
	UserID      string
	ItineraryID string
	Category    string
	From        *time.Time
	To          *time.Time
}

func (f ExpenseFilter) Matches(e *db_models.Expense) bool {
	if e.UserID != f.UserID {
		return false
	}
	if f.ItineraryID != "" && e.ItineraryID != f.ItineraryID {
		return false
	}
	if f.Category != "" && e.Category != db_models.NormalizeExpenseCategory(f.Category) {
		return false
	}
	if f.From != nil && e.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Timestamp.After(*f.To) {
		return false
	}
	return true
}
