package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/FACorreiaa/portkey-planner/internal/app/models"
)

const startDateLayout = "2006-01-02"

// dayPosition classifies a day index. The three states are mutually exclusive
// and evaluated in fixed priority order: arrival is checked before departure,
// so a single-day trip is arrival-only and still books the full lodging
// amount. That asymmetry is intentional and covered by tests.
type dayPosition int

const (
	arrivalDay dayPosition = iota
	departureDay
	explorationDay
)

func classifyDay(i, numDays int) dayPosition {
	switch {
	case i == 1:
		return arrivalDay
	case i == numDays:
		return departureDay
	default:
		return explorationDay
	}
}

// resolveStartDate parses the requested date and falls back to today when it
// is unparseable. The fallback is silent; itinerary generation never aborts
// on a bad date.
func resolveStartDate(startDate string) time.Time {
	if t, err := time.Parse(startDateLayout, startDate); err == nil {
		return t
	}
	return time.Now()
}

// BuildItinerary produces the ordered day sequence for the trip. Food and
// misc budgets are spread evenly over all days; lodging is spread over the
// nights (numDays - 1), except a single-day trip which carries the full
// lodging amount.
func BuildItinerary(destination string, numDays int, style string, alloc models.Allocation, startDate string) models.ItineraryPlan {
	dailyFoodMisc := (alloc.Amounts[models.CategoryFeasts] + alloc.Amounts[models.CategoryMisc]) / float64(numDays)

	dailyAccommodation := alloc.Amounts[models.CategoryLodging]
	if numDays > 1 {
		dailyAccommodation = alloc.Amounts[models.CategoryLodging] / float64(numDays-1)
	}

	activityBudget := math.RoundToEven(alloc.Amounts[models.CategoryActivities])
	if numDays > 2 {
		activityBudget = math.RoundToEven(alloc.Amounts[models.CategoryActivities] / float64(numDays-2))
	}

	start := resolveStartDate(startDate)
	current := start

	plan := models.ItineraryPlan{
		StartDate: start,
		Days:      make([]models.DayPlan, 0, numDays),
	}

	for i := 1; i <= numDays; i++ {
		var (
			phase         string
			activities    []models.Activity
			accommodation float64
		)

		switch classifyDay(i, numDays) {
		case arrivalDay:
			phase = "Arrival via Portkey"
			activities = []models.Activity{
				{Time: "Morning", Description: fmt.Sprintf("Apparate at %s. Check into lodgings.", destination), Cost: 0},
				{Time: "Evening", Description: "Visit the shoreline (Beach) for sunset.", Cost: dailyFoodMisc * 0.5},
			}
			accommodation = dailyAccommodation
		case departureDay:
			phase = "Departure (Mischief Managed)"
			activities = []models.Activity{
				{Time: "Morning", Description: "Final visit to shops.", Cost: 500},
				{Time: "Lunch", Description: "The Leaving Feast.", Cost: dailyFoodMisc * 0.6},
			}
		case explorationDay:
			phase = fmt.Sprintf("%s Exploration", style)
			activities = []models.Activity{
				{Time: "Morning", Description: "Major Quest (e.g., Kailasagiri or Temple).", Cost: activityBudget * 0.5},
				{Time: "Afternoon", Description: "Leisure or Museum visit.", Cost: 300},
				{Time: "Evening", Description: "Dinner and Night Life.", Cost: dailyFoodMisc * 0.7},
			}
			accommodation = dailyAccommodation
		}

		dayCost := accommodation
		for _, a := range activities {
			dayCost += a.Cost
		}

		plan.Days = append(plan.Days, models.DayPlan{
			Day:        i,
			Title:      fmt.Sprintf("Day %d (%s): %s", i, current.Format("Jan 02"), phase),
			Activities: activities,
			EstCost:    math.RoundToEven(dayCost),
		})

		current = current.AddDate(0, 0, 1)
	}

	return plan
}
