// Package facets derives the filter values that remain meaningful for a
// keyword match set.
package facets

import (
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// Default ranges used when no listing in the set carries a value.
var (
	DefaultBatteryRange = domain.RangeFacet{Min: 0, Max: 100}
	DefaultPriceRange   = domain.RangeFacet{Min: 0, Max: 0}
)

// Derive computes FilterFacets over listings. Callers must pass the
// keyword-only match set, not the attribute-filtered one, so the facets
// describe what can still be selected rather than what is selected.
//
// Enumerated values keep first-seen order and are never empty strings.
func Derive(listings []domain.Listing) domain.FilterFacets {
	var (
		conditions = newValueSet()
		colors     = newValueSet()
		platforms  = newValueSet()
		battery    = newValueSet()
		screen     = newValueSet()
		body       = newValueSet()
	)

	batteryRange := newRange()
	priceRange := newRange()

	for i := range listings {
		l := &listings[i]

		conditions.add(string(l.Condition))
		colors.add(l.Color)
		platforms.add(l.Platform)
		battery.add(l.BatteryStatus)
		screen.add(l.ScreenCondition)
		body.add(l.BodyCondition)

		if v, ok := l.EffectiveBattery(); ok {
			batteryRange.observe(float64(v))
		}
		priceRange.observe(l.Price)
	}

	return domain.FilterFacets{
		Conditions:       conditions.values,
		Colors:           colors.values,
		Platforms:        platforms.values,
		BatteryStatuses:  battery.values,
		ScreenConditions: screen.values,
		BodyConditions:   body.values,
		BatteryHealth:    batteryRange.or(DefaultBatteryRange),
		Price:            priceRange.or(DefaultPriceRange),
	}
}

// valueSet collects distinct non-empty strings in first-seen order.
type valueSet struct {
	seen   map[string]struct{}
	values []string
}

func newValueSet() *valueSet {
	return &valueSet{seen: make(map[string]struct{}), values: []string{}}
}

func (s *valueSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}

type numericRange struct {
	r   domain.RangeFacet
	set bool
}

func newRange() *numericRange { return &numericRange{} }

func (n *numericRange) observe(v float64) {
	if !n.set {
		n.r = domain.RangeFacet{Min: v, Max: v}
		n.set = true
		return
	}
	n.r.Min = min(n.r.Min, v)
	n.r.Max = max(n.r.Max, v)
}

func (n *numericRange) or(fallback domain.RangeFacet) domain.RangeFacet {
	if !n.set {
		return fallback
	}
	return n.r
}
