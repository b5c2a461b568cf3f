package db_models

import "encoding/json"

const AnonymousUserID = "anonymous"

type Activity struct {
	Time          FlexText `json:"time"`
	Activity      FlexText `json:"activity"`
	Location      FlexText `json:"location"`
	Details       FlexText `json:"details"`
	EstimatedCost FlexText `json:"estimated_cost"`
}

// Activities accepts a list of activity objects, a single object, or bare labels.
type Activities []Activity

func (a *Activities) UnmarshalJSON(data []byte) error {
	items, err := listItems(data)
	if err != nil || items == nil {
		*a = nil
		return err
	}

	out := make(Activities, 0, len(items))
	for _, item := range items {
		var activity Activity
		if item[0] == '{' {
			if err := json.Unmarshal(item, &activity); err != nil {
				return err
			}
		} else if err := activity.Activity.UnmarshalJSON(item); err != nil {
			return err
		}
		out = append(out, activity)
	}
	*a = out
	return nil
}

type DayPlan struct {
	Day        FlexInt    `json:"day"`
	Date       FlexText   `json:"date"`
	Activities Activities `json:"activities"`
}

// Itinerary accepts a list of days, a single day object, or bare text.
// A text item becomes a day holding that text as its only activity.
type Itinerary []DayPlan

func (it *Itinerary) UnmarshalJSON(data []byte) error {
	items, err := listItems(data)
	if err != nil || items == nil {
		*it = nil
		return err
	}

	out := make(Itinerary, 0, len(items))
	for i, item := range items {
		var day DayPlan
		if item[0] == '{' {
			if err := json.Unmarshal(item, &day); err != nil {
				return err
			}
		} else {
			var label FlexText
			if err := label.UnmarshalJSON(item); err != nil {
				return err
			}
			day = DayPlan{Day: FlexInt(i + 1), Activities: Activities{{Activity: label}}}
		}
		out = append(out, day)
	}
	*it = out
	return nil
}

// TravelPlan is both the persisted row of travel_plans and the API body.
type TravelPlan struct {
	BaseModel
	UserID             string    `json:"userId" gorm:"column:user_id;type:text;index:idx_travel_plans_user_id"`
	Destination        FlexText  `json:"destination" gorm:"type:text"`
	Duration           FlexText  `json:"duration" gorm:"type:text"`
	Budget             FlexText  `json:"budget" gorm:"type:text"`
	Itinerary          Itinerary `json:"itinerary" gorm:"type:jsonb;serializer:json"`
	Accommodations     Records   `json:"accommodations" gorm:"type:jsonb;serializer:json"`
	Transportation     Records   `json:"transportation" gorm:"type:jsonb;serializer:json"`
	Restaurants        Records   `json:"restaurants" gorm:"type:jsonb;serializer:json"`
	TotalEstimatedCost FlexText  `json:"total_estimated_cost" gorm:"column:total_estimated_cost;type:text"`
	Tips               FlexList  `json:"tips" gorm:"type:jsonb;serializer:json"`
	Notes              string    `json:"notes,omitempty" gorm:"type:text"`
	IsFavorite         bool      `json:"is_favorite" gorm:"default:false"`
}

func (TravelPlan) TableName() string { return "travel_plans" }

func (p *TravelPlan) GetID() string { return p.ID }

// Clone returns a copy that shares no slices with p.
func (p *TravelPlan) Clone() *TravelPlan {
	cp := *p
	if p.Itinerary != nil {
		cp.Itinerary = make(Itinerary, len(p.Itinerary))
		for i, day := range p.Itinerary {
			if day.Activities != nil {
				day.Activities = append(make(Activities, 0, len(day.Activities)), day.Activities...)
			}
			cp.Itinerary[i] = day
		}
	}
	cp.Accommodations = cloneRecords(p.Accommodations)
	cp.Transportation = cloneRecords(p.Transportation)
	cp.Restaurants = cloneRecords(p.Restaurants)
	if p.Tips != nil {
		cp.Tips = append(make(FlexList, 0, len(p.Tips)), p.Tips...)
	}
	return &cp
}

// FillDefaults replaces missing collections with empty ones and applies the default owner.
func (p *TravelPlan) FillDefaults() {
	if p.UserID == "" {
		p.UserID = AnonymousUserID
	}
	if p.Itinerary == nil {
		p.Itinerary = Itinerary{}
	}
	for i := range p.Itinerary {
		if p.Itinerary[i].Activities == nil {
			p.Itinerary[i].Activities = Activities{}
		}
	}
	if p.Accommodations == nil {
		p.Accommodations = Records{}
	}
	if p.Transportation == nil {
		p.Transportation = Records{}
	}
	if p.Restaurants == nil {
		p.Restaurants = Records{}
	}
	if p.Tips == nil {
		p.Tips = FlexList{}
	}
}

func cloneRecords(in Records) Records {
	if in == nil {
		return nil
	}
	out := make(Records, len(in))
	for i, r := range in {
		m := make(Record, len(r))
		for k, v := range r {
			m[k] = v
		}
		out[i] = m
	}
	return out
}
