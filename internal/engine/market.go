package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/ryhoangf/iValuate/internal/metrics"
	"github.com/ryhoangf/iValuate/internal/store"
	"github.com/ryhoangf/iValuate/pkg/estimate"
	"github.com/ryhoangf/iValuate/pkg/stats"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// MarketPriceRequest asks for the fair market range of the product best
// matching Keyword.
type MarketPriceRequest struct {
	Keyword string
	Hints   estimate.Hints
}

// MarketPriceRange is an estimate tagged with its currency.
type MarketPriceRange struct {
	domain.PriceRangeEstimate
	Currency string `json:"currency"`
}

// MarketPriceResult is the response of a market price request.
type MarketPriceResult struct {
	Product          domain.Product          `json:"product"`
	MarketPriceRange MarketPriceRange        `json:"marketPriceRange"`
	SimilarListings  []domain.SimilarListing `json:"similarListings"`
	PriceHistory     []domain.TrendPoint     `json:"priceHistory"`
	DataPoints       int                     `json:"dataPoints"`
	Source           estimate.Source         `json:"source"`
	LastUpdated      time.Time               `json:"lastUpdated"`
}

// marketData is everything read from the store for one product.
type marketData struct {
	product   *domain.Product
	aggregate *domain.HistoricalAggregate
	series    []domain.TrendPoint
	listings  []domain.Listing
}

// baseline is an unadjusted estimate and the data behind it.
type baseline struct {
	estimate   domain.PriceRangeEstimate
	source     estimate.Source
	dataPoints int
}

// MarketPrice resolves the keyword to a product, estimates its market range
// from history (preferred) or current listings, applies the hints and selects
// listings priced closest to the adjusted midpoint.
func (eng *Engine) MarketPrice(ctx context.Context, req MarketPriceRequest) (_ *MarketPriceResult, err error) {
	start := time.Now()
	defer func() {
		metrics.MarketPriceDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.EstimateFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		}
	}()

	kw, err := normalizeKeyword(req.Keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: keyword is required", err)
	}

	ctx, span := eng.startSpan(ctx, "engine.MarketPrice", attribute.String("keyword", kw))
	defer func() { endSpan(span, err) }()

	product, err := eng.resolve(ctx, kw)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("product.id", product.ID))

	data, err := eng.gather(ctx, product, true)
	if err != nil {
		return nil, err
	}

	base, err := eng.pickBaseline(ctx, data)
	if err != nil {
		return nil, err
	}

	adjusted := estimate.Adjust(base.estimate, req.Hints)

	similar, err := eng.similar(ctx, product.ID, adjusted)
	if err != nil {
		return nil, err
	}

	eng.log.Info("market price estimated",
		"product_id", product.ID,
		"source", base.source,
		"data_points", base.dataPoints,
		"min", adjusted.Min,
		"max", adjusted.Max,
		"confidence", adjusted.Confidence,
	)

	return &MarketPriceResult{
		Product: *product,
		MarketPriceRange: MarketPriceRange{
			PriceRangeEstimate: adjusted,
			Currency:           eng.currency,
		},
		SimilarListings: similar,
		PriceHistory:    data.series,
		DataPoints:      base.dataPoints,
		Source:          base.source,
		LastUpdated:     eng.now().UTC(),
	}, nil
}

// resolve maps a keyword to its canonical product.
func (eng *Engine) resolve(ctx context.Context, kw string) (*domain.Product, error) {
	product, err := eng.store.ResolveProduct(ctx, kw)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: no product matches %q", ErrNotFound, kw)
		}
		return nil, fmt.Errorf("resolving product: %w", err)
	}
	return product, nil
}

// gather reads the historical aggregate, the charting series and the
// product's current listings concurrently. Every read is issued up front;
// precedence between the sources is applied afterwards by pickBaseline.
func (eng *Engine) gather(ctx context.Context, product *domain.Product, withSeries bool) (*marketData, error) {
	data := &marketData{product: product, series: []domain.TrendPoint{}}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		agg, err := eng.trend.Aggregate(gctx, product.ID)
		if err != nil {
			return fmt.Errorf("reading historical aggregate: %w", err)
		}
		data.aggregate = agg
		return nil
	})

	if withSeries {
		g.Go(func() error {
			series, err := eng.trend.RecentSeries(gctx, product.ID, eng.windowDays)
			if err != nil {
				return fmt.Errorf("reading recent series: %w", err)
			}
			data.series = series
			return nil
		})
	}

	g.Go(func() error {
		listings, err := eng.store.FindListings(gctx, &store.ListingQuery{ProductID: product.ID})
		if err != nil {
			return fmt.Errorf("finding product listings: %w", err)
		}
		data.listings = listings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// pickBaseline picks the estimate source: history first, then current listings.
func (eng *Engine) pickBaseline(ctx context.Context, data *marketData) (*baseline, error) {
	var b *baseline

	if e, ok := estimate.FromHistory(data.aggregate); ok {
		b = &baseline{estimate: e, source: estimate.SourceHistory, dataPoints: data.aggregate.ListingCount}
	} else if e, ok := estimate.FromListings(stats.Prices(data.listings)); ok {
		b = &baseline{estimate: e, source: estimate.SourceListings, dataPoints: len(data.listings)}
	} else {
		return nil, fmt.Errorf("%w: product %s has no history or listings", ErrNoPriceData, data.product.ID)
	}

	metrics.EstimatesTotal.WithLabelValues(string(b.source)).Inc()
	if eng.estimates != nil {
		eng.estimates.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(b.source))))
	}

	return b, nil
}

// similar returns the product's listings inside the estimate's range,
// closest to its midpoint first.
func (eng *Engine) similar(ctx context.Context, productID string, e domain.PriceRangeEstimate) ([]domain.SimilarListing, error) {
	lo, hi := e.Min, e.Max
	band, err := eng.store.FindListings(ctx, &store.ListingQuery{
		ProductID: productID,
		Filters:   domain.ListingFilters{MinPrice: &lo, MaxPrice: &hi},
	})
	if err != nil {
		return nil, fmt.Errorf("finding listings in price band: %w", err)
	}
	return SelectSimilar(band, e, eng.similarLimit), nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNoPriceData):
		return "no_price_data"
	default:
		return "upstream"
	}
}
