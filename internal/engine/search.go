package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/ryhoangf/iValuate/internal/metrics"
	"github.com/ryhoangf/iValuate/internal/store"
	"github.com/ryhoangf/iValuate/pkg/facets"
	"github.com/ryhoangf/iValuate/pkg/stats"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// SearchRequest is a keyword search with optional attribute filters.
type SearchRequest struct {
	Keyword string
	Filters domain.ListingFilters
}

// SearchResult holds matching listings, their price summary and the facets
// of the keyword-only match set.
type SearchResult struct {
	Summary          *domain.PriceSummary `json:"summary"`
	Listings         []domain.Listing     `json:"listings"`
	AvailableFilters domain.FilterFacets  `json:"availableFilters"`
}

// Search returns listings matching the keyword and filters. Facets are
// always derived from the keyword-only match so they do not shrink as
// filters narrow the result. Zero matches is not an error.
func (eng *Engine) Search(ctx context.Context, req SearchRequest) (_ *SearchResult, err error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	kw, err := normalizeKeyword(req.Keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: keyword is required", err)
	}

	ctx, span := eng.startSpan(ctx, "engine.Search", attribute.String("keyword", kw))
	defer func() { endSpan(span, err) }()

	filtered := &store.ListingQuery{Keyword: kw, Filters: req.Filters}
	unfiltered := &store.ListingQuery{Keyword: kw}

	var matches, facetSource []domain.Listing

	if len(filtered.Clauses()) == len(unfiltered.Clauses()) {
		matches, err = eng.store.FindListings(ctx, filtered)
		if err != nil {
			return nil, fmt.Errorf("finding listings: %w", err)
		}
		facetSource = matches
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var ferr error
			matches, ferr = eng.store.FindListings(gctx, filtered)
			if ferr != nil {
				return fmt.Errorf("finding listings: %w", ferr)
			}
			return nil
		})
		g.Go(func() error {
			var ferr error
			facetSource, ferr = eng.store.FindListings(gctx, unfiltered)
			if ferr != nil {
				return fmt.Errorf("finding facet source: %w", ferr)
			}
			return nil
		})
		if err = g.Wait(); err != nil {
			return nil, err
		}
	}

	if matches == nil {
		matches = []domain.Listing{}
	}

	metrics.SearchResultListings.Observe(float64(len(matches)))
	span.SetAttributes(attribute.Int("listings", len(matches)))

	eng.log.Debug("search complete",
		"keyword", kw,
		"listings", len(matches),
		"facet_source", len(facetSource),
	)

	return &SearchResult{
		Summary:          stats.Summarize(matches),
		Listings:         matches,
		AvailableFilters: facets.Derive(facetSource),
	}, nil
}
