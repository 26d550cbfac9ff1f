// Package domain defines the core business types for the iValuate price engine.
package domain

import (
	"strings"
	"time"
)

// ConditionRank is the physical/functional grade of a listed item, ordered
// best to worst as S > A > B > C > D.
type ConditionRank string

// Condition rank constants.
const (
	ConditionS ConditionRank = "S"
	ConditionA ConditionRank = "A"
	ConditionB ConditionRank = "B"
	ConditionC ConditionRank = "C"
	ConditionD ConditionRank = "D"
)

// ParseConditionRank normalizes s to a ConditionRank. The second return value
// is false when s is not one of the known ranks.
func ParseConditionRank(s string) (ConditionRank, bool) {
	c := ConditionRank(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case ConditionS, ConditionA, ConditionB, ConditionC, ConditionD:
		return c, true
	default:
		return c, false
	}
}

// DefaultCurrency is the currency tag applied when a listing carries none.
const DefaultCurrency = "VND"

// Product is a catalog entry that listings reference.
type Product struct {
	ID          string `json:"id"          db:"product_id"`
	Name        string `json:"name"        db:"name"`
	Brand       string `json:"brand"       db:"brand"`
	ModelSeries string `json:"modelSeries" db:"model_series"`
}

// Listing is one observed marketplace offer. Listings are written by an
// external ingestion process and are read-only to the engine.
type Listing struct {
	ID          string `json:"id"                    db:"listing_id"`
	ProductID   string `json:"productId"             db:"product_id"`
	Name        string `json:"name"                  db:"name"`
	ModelSeries string `json:"modelSeries,omitempty" db:"model_series"`

	// Pricing
	Price    float64 `json:"price"    db:"price"`
	Currency string  `json:"currency" db:"currency"`

	// Condition
	Condition       ConditionRank `json:"condition"                 db:"condition_rank"`
	Color           string        `json:"color,omitempty"           db:"color"`
	BatteryStatus   string        `json:"batteryStatus,omitempty"   db:"battery_status"`
	ScreenCondition string        `json:"screenCondition,omitempty" db:"screen_condition"`
	BodyCondition   string        `json:"bodyCondition,omitempty"   db:"body_condition"`

	// Battery health is the primary reading; battery percentage is a
	// secondary field some sources report instead.
	BatteryHealth     *int `json:"batteryHealth,omitempty"     db:"battery_health"`
	BatteryPercentage *int `json:"batteryPercentage,omitempty" db:"battery_percentage"`

	// Flags
	HasBox          bool `json:"hasBox"          db:"has_box"`
	HasCharger      bool `json:"hasCharger"      db:"has_charger"`
	IsSimFree       bool `json:"isSimFree"       db:"is_sim_free"`
	FullyFunctional bool `json:"fullyFunctional" db:"fully_functional"`
	BatteryReplaced bool `json:"batteryReplaced" db:"battery_replaced"`

	// Source
	Platform  string     `json:"platform"           db:"platform"`
	SourceURL string     `json:"sourceUrl"          db:"source_url"`
	PostedAt  *time.Time `json:"postedAt,omitempty" db:"posted_at"`
}

// EffectiveBattery returns battery health, falling back to battery
// percentage. ok is false when neither is recorded.
func (l *Listing) EffectiveBattery() (value int, ok bool) {
	if l.BatteryHealth != nil {
		return *l.BatteryHealth, true
	}
	if l.BatteryPercentage != nil {
		return *l.BatteryPercentage, true
	}
	return 0, false
}

// PriceHistoryRecord is one day's price aggregate for a product.
type PriceHistoryRecord struct {
	ProductID    string    `json:"productId"    db:"product_id"`
	Date         time.Time `json:"date"         db:"record_date"`
	AveragePrice float64   `json:"averagePrice" db:"avg_price"`
	MinPrice     float64   `json:"minPrice"     db:"min_price"`
	MaxPrice     float64   `json:"maxPrice"     db:"max_price"`
	ListingCount int       `json:"listingCount" db:"listing_count"`
}

// MatchAll is the filter sentinel meaning "no constraint".
const MatchAll = "all"

// IsMatchAll reports whether an enumerated filter value imposes no constraint.
func IsMatchAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, MatchAll)
}

// ListingFilters is the sparse set of attribute filters a search may apply.
// Enumerated fields use "" or MatchAll for no constraint. Boolean flags only
// constrain when true; there is no way to require a flag to be false.
type ListingFilters struct {
	Condition       string `json:"condition,omitempty"`
	Color           string `json:"color,omitempty"`
	Platform        string `json:"platform,omitempty"`
	BatteryStatus   string `json:"batteryStatus,omitempty"`
	ScreenCondition string `json:"screenCondition,omitempty"`
	BodyCondition   string `json:"bodyCondition,omitempty"`

	BatteryReplaced bool `json:"batteryReplaced,omitempty"`
	HasBox          bool `json:"hasBox,omitempty"`
	HasCharger      bool `json:"hasCharger,omitempty"`
	IsSimFree       bool `json:"isSimFree,omitempty"`
	FullyFunctional bool `json:"fullyFunctional,omitempty"`

	MinBattery *float64 `json:"minBattery,omitempty"`
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`
}

// RangeFacet is a closed numeric interval.
type RangeFacet struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterFacets lists, for a keyword match set, the filter values that still
// select at least one listing. Every value present occurs in the match set.
type FilterFacets struct {
	Conditions       []string   `json:"conditions"`
	Colors           []string   `json:"colors"`
	Platforms        []string   `json:"platforms"`
	BatteryStatuses  []string   `json:"batteryStatuses"`
	ScreenConditions []string   `json:"screenConditions"`
	BodyConditions   []string   `json:"bodyConditions"`
	BatteryHealth    RangeFacet `json:"batteryHealthRange"`
	Price            RangeFacet `json:"priceRange"`
}

// PriceSummary is the statistical reduction of a listing collection.
type PriceSummary struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"avg"`
	Median  float64 `json:"median"`
	Count   int     `json:"count"`
}

// HistoricalAggregate is the rolling aggregate over a product's daily
// price history inside a lookback window.
type HistoricalAggregate struct {
	AveragePrice float64 `json:"averagePrice"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	AvgMinPrice  float64 `json:"avgMinPrice"`
	AvgMaxPrice  float64 `json:"avgMaxPrice"`
	StdDev       float64 `json:"stdDev"`
	Days         int     `json:"days"`
	ListingCount int     `json:"listingCount"`
}

// TrendPoint is one entry of the charting series.
type TrendPoint struct {
	Date         time.Time `json:"date"`
	AveragePrice float64   `json:"averagePrice"`
	MinPrice     float64   `json:"minPrice"`
	MaxPrice     float64   `json:"maxPrice"`
	ListingCount int       `json:"listingCount"`
}

// PriceRangeEstimate is an estimated fair market price range.
type PriceRangeEstimate struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Average    float64 `json:"average"`
	Median     float64 `json:"median"`
	Confidence float64 `json:"confidence"`
}

// Midpoint returns the center of the [Min, Max] interval.
func (e PriceRangeEstimate) Midpoint() float64 {
	return (e.Min + e.Max) / 2
}

// SimilarListing is a listing ranked by distance from an estimate midpoint.
type SimilarListing struct {
	Listing
	PriceDiff    float64 `json:"priceDiff"`
	AbsPriceDiff float64 `json:"absPriceDiff"`
}
