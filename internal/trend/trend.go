// Package trend reads rolling statistics and charting series from a
// product's daily price history.
package trend

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ryhoangf/iValuate/internal/store"
	"github.com/ryhoangf/iValuate/pkg/stats"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// DefaultWindowDays is the default lookback window.
const DefaultWindowDays = 30

// Reader computes historical aggregates over a lookback window.
type Reader struct {
	store      store.Store
	windowDays int
	now        func() time.Time
}

// Option configures a Reader.
type Option func(*Reader)

// WithWindowDays sets the lookback window. Non-positive values are ignored.
func WithWindowDays(days int) Option {
	return func(r *Reader) {
		if days > 0 {
			r.windowDays = days
		}
	}
}

// WithClock overrides the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(r *Reader) {
		r.now = now
	}
}

// NewReader creates a Reader over s.
func NewReader(s store.Store, opts ...Option) *Reader {
	r := &Reader{
		store:      s,
		windowDays: DefaultWindowDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WindowDays returns the configured lookback window.
func (r *Reader) WindowDays() int {
	return r.windowDays
}

// Window returns the inclusive [start, end] calendar-day window ending today.
func (r *Reader) Window() (start, end time.Time) {
	y, m, d := r.now().UTC().Date()
	end = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return end.AddDate(0, 0, -r.windowDays), end
}

// Aggregate returns the rolling aggregate for productID over the window.
// It returns nil when no record falls inside the window.
func (r *Reader) Aggregate(ctx context.Context, productID string) (*domain.HistoricalAggregate, error) {
	start, end := r.Window()

	records, err := r.store.ListPriceHistory(ctx, productID, start)
	if err != nil {
		return nil, fmt.Errorf("listing price history for %s: %w", productID, err)
	}

	records = slices.DeleteFunc(records, func(rec domain.PriceHistoryRecord) bool {
		return rec.Date.Before(start) || rec.Date.After(end)
	})

	return Summarize(records), nil
}

// Summarize reduces daily records to a HistoricalAggregate. The standard
// deviation is the population deviation of the daily averages.
func Summarize(records []domain.PriceHistoryRecord) *domain.HistoricalAggregate {
	if len(records) == 0 {
		return nil
	}

	avgs := make([]float64, 0, len(records))
	mins := make([]float64, 0, len(records))
	maxs := make([]float64, 0, len(records))
	count := 0
	for _, rec := range records {
		avgs = append(avgs, rec.AveragePrice)
		mins = append(mins, rec.MinPrice)
		maxs = append(maxs, rec.MaxPrice)
		count += rec.ListingCount
	}

	return &domain.HistoricalAggregate{
		AveragePrice: stats.Mean(avgs),
		MinPrice:     slices.Min(mins),
		MaxPrice:     slices.Max(maxs),
		AvgMinPrice:  stats.Mean(mins),
		AvgMaxPrice:  stats.Mean(maxs),
		StdDev:       stats.PopulationStdDev(avgs),
		Days:         len(records),
		ListingCount: count,
	}
}

// RecentSeries returns up to limit of the most recent daily records,
// ordered oldest to newest. A non-positive limit uses the window length.
func (r *Reader) RecentSeries(ctx context.Context, productID string, limit int) ([]domain.TrendPoint, error) {
	if limit <= 0 {
		limit = r.windowDays
	}

	records, err := r.store.RecentPriceHistory(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent price history for %s: %w", productID, err)
	}

	points := make([]domain.TrendPoint, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		points = append(points, domain.TrendPoint{
			Date:         rec.Date,
			AveragePrice: rec.AveragePrice,
			MinPrice:     rec.MinPrice,
			MaxPrice:     rec.MaxPrice,
			ListingCount: rec.ListingCount,
		})
	}
	return points, nil
}
