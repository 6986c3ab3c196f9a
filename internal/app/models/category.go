package models

import (
	"bytes"
	"encoding/json"
)

// Category is one of the six fixed spending buckets. The allocation contract is
// keyed on this closed set rather than on display strings.
type Category int

const (
	CategoryLodging Category = iota
	CategoryTransport
	CategoryFeasts
	CategoryActivities
	CategoryMisc
	CategorySavings
)

// Categories lists all buckets in their fixed presentation order.
var Categories = [...]Category{
	CategoryLodging,
	CategoryTransport,
	CategoryFeasts,
	CategoryActivities,
	CategoryMisc,
	CategorySavings,
}

var categoryLabels = map[Category]string{
	CategoryLodging:    "Lodging (Inns) 🏨",
	CategoryTransport:  "Transport (Brooms) ✈️",
	CategoryFeasts:     "Feasts & Butterbeer 🍽️",
	CategoryActivities: "Quests & Tours 🎟️",
	CategoryMisc:       "Trinkets 🛍️",
	CategorySavings:    "Dark Arts Defense (Savings) 💸",
}

// Label returns the user-facing name of the bucket.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Allocation maps every spending bucket to a whole-unit amount in the input
// currency. EstimatedTotal is the sum of the rounded amounts and may drift
// from the raw budget by a few units.
type Allocation struct {
	Amounts        map[Category]float64
	EstimatedTotal float64
}

// MarshalJSON emits the display labels in the fixed category order.
func (a Allocation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Label())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.Amounts[c])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
