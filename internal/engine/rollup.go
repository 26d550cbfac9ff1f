package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/ryhoangf/iValuate/internal/metrics"
	"github.com/ryhoangf/iValuate/internal/store"
	"github.com/ryhoangf/iValuate/pkg/stats"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// RollupResult reports one history rollup run.
type RollupResult struct {
	Date     time.Time `json:"date"`
	Products int       `json:"products"`
	Written  int       `json:"written"`
	Failed   int       `json:"failed"`
}

// RunHistoryRollup summarizes each listed product's current listings into
// the price history record for day. Existing records for that day are
// replaced. Per-product failures are logged and counted; the run continues.
func (eng *Engine) RunHistoryRollup(ctx context.Context, day time.Time) (_ *RollupResult, err error) {
	start := time.Now()
	defer func() {
		metrics.RollupDuration.Observe(time.Since(start).Seconds())
	}()

	y, m, d := day.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	ctx, span := eng.startSpan(ctx, "engine.RunHistoryRollup")
	defer func() { endSpan(span, err) }()

	ids, err := eng.store.ListListedProductIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing product ids: %w", err)
	}

	res := &RollupResult{Date: date, Products: len(ids)}

	for _, id := range ids {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		if err := eng.rollupProduct(ctx, id, date); err != nil {
			res.Failed++
			metrics.RollupErrorsTotal.Inc()
			eng.log.Error("rollup failed", "product_id", id, "error", err)
			continue
		}

		res.Written++
		metrics.RollupProductsTotal.Inc()
	}

	metrics.RollupLastSuccessTimestamp.SetToCurrentTime()

	eng.log.Info("rollup complete",
		"date", date.Format(time.DateOnly),
		"products", res.Products,
		"written", res.Written,
		"failed", res.Failed,
		"duration", time.Since(start),
	)

	return res, nil
}

func (eng *Engine) rollupProduct(ctx context.Context, productID string, date time.Time) error {
	listings, err := eng.store.FindListings(ctx, &store.ListingQuery{ProductID: productID})
	if err != nil {
		return fmt.Errorf("finding listings: %w", err)
	}

	summary := stats.Summarize(listings)
	if summary == nil {
		return nil
	}

	if err := eng.store.UpsertPriceHistory(ctx, &domain.PriceHistoryRecord{
		ProductID:    productID,
		Date:         date,
		AveragePrice: summary.Average,
		MinPrice:     summary.Min,
		MaxPrice:     summary.Max,
		ListingCount: summary.Count,
	}); err != nil {
		return fmt.Errorf("upserting price history: %w", err)
	}
	return nil
}
