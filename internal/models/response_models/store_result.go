package response_models

import "travelplanner/internal/models/db_models"

const (
	SourceDurable = "durable"
	SourceMemory  = "memory"
	SourceBoth    = "both"
)

// StoreResult says where a record was written to or read from.
// Stored is true only when the durable store took part.
type StoreResult struct {
	Stored bool   `json:"stored"`
	Source string `json:"source"`
}

func MemoryOnly() StoreResult       { return StoreResult{Stored: false, Source: SourceMemory} }
func DurableAndMemory() StoreResult { return StoreResult{Stored: true, Source: SourceBoth} }
func DurableOnly() StoreResult      { return StoreResult{Stored: true, Source: SourceDurable} }

// Removed reports which stores actually held a deleted row.
func Removed(inDurable, inMemory bool) StoreResult {
	switch {
	case inDurable && inMemory:
		return DurableAndMemory()
	case inDurable:
		return DurableOnly()
	default:
		return MemoryOnly()
	}
}

type PlanResponse struct {
	db_models.TravelPlan
	Storage StoreResult `json:"storage"`
}

type DeleteResponse struct {
	Message string      `json:"message"`
	ID      string      `json:"id"`
	Storage StoreResult `json:"storage"`
}
