package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"travelplanner/internal/models/request_models"
	"travelplanner/pkg/utils"
)

const (
	fieldAPIKey  = "apiKey"
	fieldUserID  = "userId"
	fieldRequest = "request"
)

// planSchema is the JSON shape the model is asked to return.
const planSchema = `{
  "destination": "city or region the user asked for",
  "duration": "e.g. 5 days",
  "budget": "e.g. 10000 RMB",
  "itinerary": [
    {
      "day": 1,
      "date": "Day 1",
      "activities": [
        {"time": "09:00", "activity": "...", "location": "...", "details": "...", "estimated_cost": "..."}
      ]
    }
  ],
  "accommodations": [{"name": "...", "location": "...", "price_range": "...", "booking_link": "..."}],
  "transportation": [{"type": "...", "details": "...", "estimated_cost": "..."}],
  "restaurants": [{"name": "...", "cuisine": "...", "location": "...", "price_range": "...", "recommendation": "..."}],
  "total_estimated_cost": "...",
  "tips": ["..."]
}`

// NormalizePlanRequest accepts the generate-plan body in any of its supported forms:
// a bare string, an object carrying apiKey (the object itself is the request),
// or an object with a nested "request" string or object.
func NormalizePlanRequest(payload any) (request_models.PlanRequest, error) {
	switch v := payload.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return request_models.PlanRequest{}, fmt.Errorf("%w: travel request is empty", utils.ErrInvalidRequest)
		}
		return request_models.PlanRequest{Content: text}, nil

	case map[string]any:
		userID, _ := v[fieldUserID].(string)

		if apiKey, _ := v[fieldAPIKey].(string); strings.TrimSpace(apiKey) != "" {
			content := withoutKeys(v, fieldAPIKey, fieldUserID)
			if len(content) == 0 {
				return request_models.PlanRequest{}, fmt.Errorf("%w: travel request is empty", utils.ErrInvalidRequest)
			}
			return request_models.PlanRequest{Content: content, APIKey: strings.TrimSpace(apiKey), UserID: userID}, nil
		}

		switch inner := v[fieldRequest].(type) {
		case string:
			text := strings.TrimSpace(inner)
			if text == "" {
				return request_models.PlanRequest{}, fmt.Errorf("%w: travel request is empty", utils.ErrInvalidRequest)
			}
			return request_models.PlanRequest{Content: text, UserID: userID}, nil
		case map[string]any:
			content := withoutKeys(inner, fieldAPIKey)
			if len(content) == 0 {
				return request_models.PlanRequest{}, fmt.Errorf("%w: travel request is empty", utils.ErrInvalidRequest)
			}
			apiKey, _ := inner[fieldAPIKey].(string)
			return request_models.PlanRequest{Content: content, APIKey: strings.TrimSpace(apiKey), UserID: userID}, nil
		default:
			return request_models.PlanRequest{}, fmt.Errorf("%w: missing request field", utils.ErrInvalidRequest)
		}

	default:
		return request_models.PlanRequest{}, fmt.Errorf("%w: request must be a string or an object", utils.ErrInvalidRequest)
	}
}

// ContentText renders the user content for the prompt; objects become compact JSON.
func ContentText(req request_models.PlanRequest) string {
	if s, ok := req.Content.(string); ok {
		return s
	}
	b, err := json.Marshal(req.Content)
	if err != nil {
		return fmt.Sprintf("%v", req.Content)
	}
	return string(b)
}

// BuildPlanPrompt builds the single user message sent to the model.
func BuildPlanPrompt(req request_models.PlanRequest) string {
	var prompt strings.Builder

	prompt.WriteString("Create a detailed travel plan for the following request:\n")
	prompt.WriteString(ContentText(req))
	prompt.WriteString("\n\nReturn JSON only, matching this schema exactly (same keys, same nesting):\n")
	prompt.WriteString(planSchema)
	prompt.WriteString("\n\nRules:\n")
	prompt.WriteString("- The \"destination\" in your answer MUST be the destination the user asked for. Never substitute another place.\n")
	prompt.WriteString("- Give one itinerary entry per day, each with time-ordered activities and estimated costs.\n")
	prompt.WriteString("- Include accommodations, transportation, restaurants, total_estimated_cost and practical tips.\n")
	prompt.WriteString("- No markdown, no comments, no text outside the JSON object.\n")

	return prompt.String()
}

func withoutKeys(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
