package models

import (
	"encoding/json"
	"time"
)

// TripRequest carries the raw trip parameters supplied by the caller. Budget
// and days are validated at the boundary before the core runs.
type TripRequest struct {
	UserName    string  `json:"user_name"`
	Destination string  `json:"destination"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
	NumDays     int     `json:"days" binding:"required,gte=1"`
	TravelStyle string  `json:"travel_style"`
	Age         int     `json:"age" binding:"gte=0"`
	Currency    string  `json:"currency"`
	StartDate   string  `json:"start_date"`
}

// Activity is a single itinerary entry with a time-of-day slot. Costs may be
// fractional before day-level rounding.
type Activity struct {
	Time        string  `json:"time"`
	Description string  `json:"desc"`
	Cost        float64 `json:"cost"`
}

// DayPlan is one day of the itinerary. EstCost is the rounded sum of the
// activity costs plus the daily accommodation share, when one applies.
type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
	EstCost    float64    `json:"estCost"`
}

// ItineraryPlan is the full ordered day sequence together with the resolved
// start date the calendar was generated from.
type ItineraryPlan struct {
	StartDate time.Time
	Days      []DayPlan
}

// MarshalJSON keeps the wire format a plain day list.
func (p ItineraryPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Days)
}

// PlanResult is the complete plan returned per request. Nothing is retained
// between requests.
type PlanResult struct {
	TripTitle     string        `json:"trip_title"`
	BriefIdea     string        `json:"brief_idea"`
	EstimatedCost float64       `json:"estimated_cost"`
	Allocation    Allocation    `json:"allocation"`
	Itinerary     ItineraryPlan `json:"itinerary"`
}
