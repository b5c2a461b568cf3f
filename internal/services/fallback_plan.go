package services

import "travelplanner/internal/models/db_models"

// FallbackPlan is served when no LLM credential is configured at all.
// Its content is fixed so the client always sees the same sample.
func FallbackPlan() *db_models.TravelPlan {
	return &db_models.TravelPlan{
		Destination: "Japan",
		Duration:    "5 days",
		Budget:      "10,000 RMB",
		Itinerary: []db_models.DayPlan{
			{
				Day:  1,
				Date: "Day 1",
				Activities: []db_models.Activity{
					{
						Time:          "09:00",
						Activity:      "Arrival at Tokyo Station",
						Location:      "Tokyo Station",
						Details:       "Meet and greet with local guide",
						EstimatedCost: "0 RMB",
					},
					{
						Time:          "12:00",
						Activity:      "Lunch at Tsukiji Outer Market",
						Location:      "Tsukiji Outer Market",
						Details:       "Fresh sushi and seafood",
						EstimatedCost: "150 RMB",
					},
				},
			},
		},
		Accommodations: []db_models.Record{
			{
				"name":         "Tokyo Family Hotel",
				"location":     "Shinjuku",
				"price_range":  "800-1200 RMB/night",
				"booking_link": "https://example.com",
			},
		},
		Transportation: []db_models.Record{
			{
				"type":           "Airport Transfer",
				"details":        "Private car from airport to hotel",
				"estimated_cost": "800 RMB",
			},
		},
		Restaurants: []db_models.Record{
			{
				"name":           "Sukiyabashi Jiro",
				"cuisine":        "Sushi",
				"location":       "Ginza",
				"price_range":    "3000-5000 RMB",
				"recommendation": "World-famous sushi restaurant (requires reservation)",
			},
		},
		TotalEstimatedCost: "5000 RMB",
		Tips: []string{
			"Purchase a 7-day JR Pass if planning to travel between cities",
			"Download Google Translate app for language assistance",
		},
	}
}
