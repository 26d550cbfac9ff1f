// Package store defines the data-access boundary for iValuate.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ListingQuery selects listings. Zero-valued fields impose no constraint.
type ListingQuery struct {
	// Keyword is matched case-insensitively as a substring of the product
	// name or model series.
	Keyword   string
	ProductID string
	Filters   domain.ListingFilters
	Limit     int // 0 means no limit
}

// Store defines all data access operations for iValuate.
type Store interface {
	// Listings. Results are ordered by price ascending, then insertion order.
	FindListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, error)
	UpsertListing(ctx context.Context, l *domain.Listing) error

	// Products
	ResolveProduct(ctx context.Context, keyword string) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpsertProduct(ctx context.Context, p *domain.Product) error
	ListListedProductIDs(ctx context.Context) ([]string, error)

	// Price history
	ListPriceHistory(ctx context.Context, productID string, since time.Time) ([]domain.PriceHistoryRecord, error)
	RecentPriceHistory(ctx context.Context, productID string, limit int) ([]domain.PriceHistoryRecord, error)
	UpsertPriceHistory(ctx context.Context, r *domain.PriceHistoryRecord) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close()
}
