package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize overrides the maximum number of pooled connections.
func WithPoolSize(n int32) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = n
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PostgresOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return runMigrations(ctx, postgresMigrations, pgMigrator{pool: s.pool})
}

// FindListings returns listings matching q.
func (s *PostgresStore) FindListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, error) {
	query, args := q.ToSQL()

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(listingDest(&l, &l.PostedAt)...); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// UpsertListing inserts or updates a listing by listing id.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	if _, err := s.pool.Exec(ctx, queryUpsertListing, listingArgs(l, l.PostedAt)...); err != nil {
		return fmt.Errorf("upserting listing %s: %w", l.ID, err)
	}
	return nil
}

// ResolveProduct returns the best product match for keyword.
func (s *PostgresStore) ResolveProduct(ctx context.Context, keyword string) (*domain.Product, error) {
	return s.scanProduct(s.pool.QueryRow(ctx, queryResolveProduct, resolveArgs(keyword)...))
}

// GetProduct retrieves a product by id.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id))
}

func (*PostgresStore) scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	if err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.ModelSeries); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}
	return p, nil
}

// UpsertProduct inserts or updates a product by id.
func (s *PostgresStore) UpsertProduct(ctx context.Context, p *domain.Product) error {
	if _, err := s.pool.Exec(ctx, queryUpsertProduct, p.ID, p.Name, p.Brand, p.ModelSeries); err != nil {
		return fmt.Errorf("upserting product %s: %w", p.ID, err)
	}
	return nil
}

// ListListedProductIDs returns the ids of products with at least one listing.
func (s *PostgresStore) ListListedProductIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListListedProductIDs)
	if err != nil {
		return nil, fmt.Errorf("querying product ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting product ids: %w", err)
	}
	return ids, nil
}

// ListPriceHistory returns daily records dated on or after since, oldest first.
func (s *PostgresStore) ListPriceHistory(
	ctx context.Context,
	productID string,
	since time.Time,
) ([]domain.PriceHistoryRecord, error) {
	return s.queryHistory(ctx, queryListPriceHistory, productID, dateOnly(since))
}

// RecentPriceHistory returns up to limit of the latest records, newest first.
func (s *PostgresStore) RecentPriceHistory(
	ctx context.Context,
	productID string,
	limit int,
) ([]domain.PriceHistoryRecord, error) {
	return s.queryHistory(ctx, queryRecentPriceHistory, productID, limit)
}

func (s *PostgresStore) queryHistory(ctx context.Context, query string, args ...any) ([]domain.PriceHistoryRecord, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying price history: %w", err)
	}
	defer rows.Close()

	var records []domain.PriceHistoryRecord
	for rows.Next() {
		var r domain.PriceHistoryRecord
		if err := rows.Scan(
			&r.ProductID, &r.Date, &r.AveragePrice, &r.MinPrice, &r.MaxPrice, &r.ListingCount,
		); err != nil {
			return nil, fmt.Errorf("scanning price history: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// UpsertPriceHistory inserts or replaces the record for (product, date).
func (s *PostgresStore) UpsertPriceHistory(ctx context.Context, r *domain.PriceHistoryRecord) error {
	if _, err := s.pool.Exec(ctx, queryUpsertPriceHistory,
		r.ProductID, dateOnly(r.Date), r.AveragePrice, r.MinPrice, r.MaxPrice, r.ListingCount,
	); err != nil {
		return fmt.Errorf("upserting price history for %s: %w", r.ProductID, err)
	}
	return nil
}
