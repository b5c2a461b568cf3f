package response_models

import "travelplanner/internal/models/db_models"

type ExpenseResponse struct {
	db_models.Expense
	Storage StoreResult `json:"storage"`
}

type ExpenseSummary struct {
	Total          float64            `json:"total"`
	Categories     []string           `json:"categories"`
	CategoryTotals map[string]float64 `json:"categoryTotals"`
	Count          int                `json:"count"`
}

type SettingsStatus struct {
	SupabaseConfigured bool   `json:"supabaseConfigured"`
	LLMConfigured      bool   `json:"llmConfigured"`
	LLMProvider        string `json:"llmProvider"`
	LLMModel           string `json:"llmModel"`
	Storage            string `json:"storage"`
}
