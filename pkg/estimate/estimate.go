// Package estimate turns price statistics into a confidence-weighted market
// price range and applies attribute-based adjustments to it.
//
// This is closed-form statistics plus fixed multipliers. Nothing is learned.
package estimate

import (
	"math"

	"github.com/ryhoangf/iValuate/pkg/stats"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// Confidence values identify which source backed an estimate.
const (
	HistoricalConfidence = 0.85
	ListingConfidence    = 0.70
)

// SyntheticSpreadRatio is the spread used, as a fraction of the average,
// when history carries no usable standard deviation.
const SyntheticSpreadRatio = 0.15

// Source names the data an estimate was built from.
type Source string

// Estimate sources.
const (
	SourceHistory  Source = "history"
	SourceListings Source = "listings"
)

// FromHistory builds a base estimate from a rolling historical aggregate.
// ok is false when the aggregate is absent or has no usable average.
func FromHistory(agg *domain.HistoricalAggregate) (e domain.PriceRangeEstimate, ok bool) {
	if agg == nil || agg.AveragePrice <= 0 {
		return domain.PriceRangeEstimate{}, false
	}

	avg := agg.AveragePrice
	spread := agg.StdDev
	if spread <= 0 {
		spread = avg * SyntheticSpreadRatio
	}

	return build(avg, spread, (agg.AvgMinPrice+agg.AvgMaxPrice)/2, HistoricalConfidence), true
}

// FromListings builds a base estimate from current listing prices.
// ok is false when there are no prices.
func FromListings(prices []float64) (e domain.PriceRangeEstimate, ok bool) {
	if len(prices) == 0 {
		return domain.PriceRangeEstimate{}, false
	}

	return build(
		stats.Mean(prices),
		stats.PopulationStdDev(prices),
		stats.Median(prices),
		ListingConfidence,
	), true
}

func build(avg, spread, median, confidence float64) domain.PriceRangeEstimate {
	e := domain.PriceRangeEstimate{
		Min:        math.Round(avg - spread),
		Max:        math.Round(avg + spread),
		Average:    math.Round(avg),
		Median:     math.Round(median),
		Confidence: confidence,
	}
	// The median of daily lows and highs is not bounded by avg±stddev.
	e.Median = math.Min(math.Max(e.Median, e.Min), e.Max)
	return e
}
