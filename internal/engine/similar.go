package engine

import (
	"math"
	"slices"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// SelectSimilar keeps the listings priced inside [e.Min, e.Max], ranks them
// by absolute distance from the range midpoint and truncates to limit.
// Equal distances keep their input order. A non-positive limit means
// DefaultSimilarLimit.
func SelectSimilar(listings []domain.Listing, e domain.PriceRangeEstimate, limit int) []domain.SimilarListing {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	mid := e.Midpoint()
	out := make([]domain.SimilarListing, 0, len(listings))
	for _, l := range listings {
		if l.Price < e.Min || l.Price > e.Max {
			continue
		}
		diff := l.Price - mid
		out = append(out, domain.SimilarListing{
			Listing:      l,
			PriceDiff:    diff,
			AbsPriceDiff: math.Abs(diff),
		})
	}

	slices.SortStableFunc(out, func(a, b domain.SimilarListing) int {
		switch {
		case a.AbsPriceDiff < b.AbsPriceDiff:
			return -1
		case a.AbsPriceDiff > b.AbsPriceDiff:
			return 1
		default:
			return 0
		}
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
