package estimate

import (
	"math"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// Hints are optional item attributes that shift an estimate.
type Hints struct {
	Condition     string
	BatteryHealth *int
}

// Empty reports whether no hint is set.
func (h Hints) Empty() bool {
	return h.Condition == "" && h.BatteryHealth == nil
}

var conditionMultipliers = map[domain.ConditionRank]float64{
	domain.ConditionS: 1.15,
	domain.ConditionA: 1.05,
	domain.ConditionB: 1.00,
	domain.ConditionC: 0.90,
	domain.ConditionD: 0.75,
}

// ConditionMultiplier returns the price multiplier for a condition rank.
// Unrecognized ranks are neutral.
func ConditionMultiplier(rank string) float64 {
	c, ok := domain.ParseConditionRank(rank)
	if !ok {
		return 1.0
	}
	return conditionMultipliers[c]
}

// BatteryMultiplier returns the price multiplier for a battery health
// percentage.
func BatteryMultiplier(health int) float64 {
	switch {
	case health >= 95:
		return 1.05
	case health >= 85:
		return 1.00
	case health >= 80:
		return 0.95
	case health >= 70:
		return 0.90
	default:
		return 0.85
	}
}

// Scale multiplies every price figure by m, rounding each to the nearest
// integer. Confidence is unchanged.
func Scale(e domain.PriceRangeEstimate, m float64) domain.PriceRangeEstimate {
	e.Min = math.Round(e.Min * m)
	e.Max = math.Round(e.Max * m)
	e.Average = math.Round(e.Average * m)
	e.Median = math.Round(e.Median * m)
	return e
}

// Adjust applies the condition multiplier and then the battery multiplier.
// The battery step scales the already-adjusted, already-rounded figures; the
// two are composed sequentially, not applied independently to the base.
func Adjust(e domain.PriceRangeEstimate, h Hints) domain.PriceRangeEstimate {
	if h.Condition != "" {
		e = Scale(e, ConditionMultiplier(h.Condition))
	}
	if h.BatteryHealth != nil {
		e = Scale(e, BatteryMultiplier(*h.BatteryHealth))
	}
	return e
}
