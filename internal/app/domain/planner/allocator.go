package planner

import (
	"math"

	"github.com/FACorreiaa/portkey-planner/internal/app/models"
)

// FastPacedStyle forces the lodging ratio regardless of age.
const FastPacedStyle = "Fast-paced"

const baseLodgingRatio = 0.40

// lodgingOverride adjusts the lodging ratio when its condition matches.
// Overrides run in order and each matching rule replaces the previous value,
// so the style rule wins over the age rule whenever both apply.
type lodgingOverride struct {
	applies func(age int, style string) bool
	ratio   float64
}

var lodgingOverrides = []lodgingOverride{
	{func(age int, _ string) bool { return age < 30 }, 0.30},
	{func(_ int, style string) bool { return style == FastPacedStyle }, 0.35},
}

func lodgingRatioFor(age int, style string) float64 {
	ratio := baseLodgingRatio
	for _, o := range lodgingOverrides {
		if o.applies(age, style) {
			ratio = o.ratio
		}
	}
	return ratio
}

// Allocate splits the budget across the six spending buckets. The activities
// bucket absorbs whatever the lodging adjustment freed, keeping the ratio sum
// at exactly 1.0. Amounts use round-half-to-even (banker's rounding) to whole
// currency units; EstimatedTotal is the sum of the rounded amounts.
func Allocate(budget float64, age int, style string) models.Allocation {
	lodging := lodgingRatioFor(age, style)

	ratios := map[models.Category]float64{
		models.CategoryLodging:    lodging,
		models.CategoryTransport:  0.20,
		models.CategoryFeasts:     0.17,
		models.CategoryActivities: 0.12 + (baseLodgingRatio - lodging),
		models.CategoryMisc:       0.06,
		models.CategorySavings:    0.05,
	}

	alloc := models.Allocation{Amounts: make(map[models.Category]float64, len(ratios))}
	for _, c := range models.Categories {
		amount := math.RoundToEven(budget * ratios[c])
		alloc.Amounts[c] = amount
		alloc.EstimatedTotal += amount
	}
	return alloc
}
