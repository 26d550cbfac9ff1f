// Package stats reduces listing prices to summary statistics.
package stats

import (
	"math"
	"slices"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// Prices extracts listing prices in input order.
func Prices(listings []domain.Listing) []float64 {
	prices := make([]float64, len(listings))
	for i := range listings {
		prices[i] = listings[i].Price
	}
	return prices
}

// Summarize reduces listings to min, max, rounded average, median and count.
// It returns nil for an empty collection; callers must treat "no summary"
// differently from a summary of zeros.
func Summarize(listings []domain.Listing) *domain.PriceSummary {
	return SummarizePrices(Prices(listings))
}

// SummarizePrices is Summarize over raw prices.
func SummarizePrices(prices []float64) *domain.PriceSummary {
	if len(prices) == 0 {
		return nil
	}

	return &domain.PriceSummary{
		Min:     slices.Min(prices),
		Max:     slices.Max(prices),
		Average: math.Round(Mean(prices)),
		Median:  Median(prices),
		Count:   len(prices),
	}
}

// Mean returns the arithmetic mean, or 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopulationStdDev returns the population standard deviation (divide by n).
func PopulationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// Median returns the middle value of the sorted values. For an even count it
// is the mean of the two middle values rounded to the nearest integer.
// The input slice is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return math.Round((sorted[n/2-1] + sorted[n/2]) / 2)
}
