package plan

import (
	"fmt"
	"math"
)

// Duration 套餐时长标识
// 时长只允许目录中定义的固定取值，边界层需要先校验再落库
type Duration string

const (
	DurationWeekly     Duration = "weekly"
	DurationFifteenDay Duration = "fifteen_day"
	DurationMonthly    Duration = "monthly"
)

// PlanDuration describes one entry of the plan catalog
type PlanDuration struct {
	Key        Duration `json:"key"`
	Label      string   `json:"label"`
	Days       int      `json:"days"`       // fixed day length of the plan
	Multiplier float64  `json:"multiplier"` // price factor relative to the monthly base price
}

// catalog is the fixed, ordered plan catalog.
// Exactly one entry carries multiplier 1.0: the canonical monthly unit
// that package base prices are quoted against.
var catalog = []PlanDuration{
	{Key: DurationWeekly, Label: "7 Days", Days: 7, Multiplier: 0.25},
	{Key: DurationFifteenDay, Label: "15 Days", Days: 15, Multiplier: 0.5},
	{Key: DurationMonthly, Label: "1 Month", Days: 30, Multiplier: 1.0},
}

// Durations returns the catalog in display order
func Durations() []PlanDuration {
	out := make([]PlanDuration, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup gets a catalog entry by key
func Lookup(key Duration) (PlanDuration, bool) {
	for _, pd := range catalog {
		if pd.Key == key {
			return pd, true
		}
	}
	return PlanDuration{}, false
}

// MustLookup gets a catalog entry by key and panics on an unknown key.
// An unknown key here is a configuration error, not a runtime condition.
func MustLookup(key Duration) PlanDuration {
	pd, ok := Lookup(key)
	if !ok {
		panic(fmt.Sprintf("unknown plan duration: %s", key))
	}
	return pd
}

// IsValidDuration reports whether key exists in the catalog
func IsValidDuration(key Duration) bool {
	_, ok := Lookup(key)
	return ok
}

// ProratedPrice 根据时长倍率换算套餐价格
// Scales the monthly base price by the duration's multiplier, rounded to
// 2 decimal places. An unknown key falls back to the base price unchanged;
// callers that need strict validation must check the key first.
func ProratedPrice(basePrice float64, key Duration) float64 {
	pd, ok := Lookup(key)
	if !ok {
		return basePrice
	}
	return math.Round(basePrice*pd.Multiplier*100) / 100
}
