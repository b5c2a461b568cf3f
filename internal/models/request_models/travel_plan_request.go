package request_models

import "travelplanner/internal/models/db_models"

// PlanRequest is a generate-plan payload after normalization.
type PlanRequest struct {
	// Content is the user's request: a string or a JSON object.
	Content any
	APIKey  string
	UserID  string
}

// UpdatePlanRequest lists the fields PUT /api/travel-plans/:id may change.
// Nil fields are left untouched.
type UpdatePlanRequest struct {
	Destination        *db_models.FlexText  `json:"destination"`
	Duration           *db_models.FlexText  `json:"duration"`
	Budget             *db_models.FlexText  `json:"budget"`
	Itinerary          *db_models.Itinerary `json:"itinerary"`
	Accommodations     *db_models.Records   `json:"accommodations"`
	Transportation     *db_models.Records   `json:"transportation"`
	Restaurants        *db_models.Records   `json:"restaurants"`
	TotalEstimatedCost *db_models.FlexText  `json:"total_estimated_cost"`
	Tips               *db_models.FlexList  `json:"tips"`
	Notes              *string              `json:"notes"`
	IsFavorite         *bool                `json:"is_favorite"`
}

// Apply merges the listed fields into plan.
func (r UpdatePlanRequest) Apply(plan *db_models.TravelPlan) {
	if r.Destination != nil {
		plan.Destination = *r.Destination
	}
	if r.Duration != nil {
		plan.Duration = *r.Duration
	}
	if r.Budget != nil {
		plan.Budget = *r.Budget
	}
	if r.Itinerary != nil {
		plan.Itinerary = *r.Itinerary
	}
	if r.Accommodations != nil {
		plan.Accommodations = *r.Accommodations
	}
	if r.Transportation != nil {
		plan.Transportation = *r.Transportation
	}
	if r.Restaurants != nil {
		plan.Restaurants = *r.Restaurants
	}
	if r.TotalEstimatedCost != nil {
		plan.TotalEstimatedCost = *r.TotalEstimatedCost
	}
	if r.Tips != nil {
		plan.Tips = *r.Tips
	}
	if r.Notes != nil {
		plan.Notes = *r.Notes
	}
	if r.IsFavorite != nil {
		plan.IsFavorite = *r.IsFavorite
	}
}
