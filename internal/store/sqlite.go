package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// MemoryDSN opens a private in-memory SQLite database.
const MemoryDSN = ":memory:"

// SQLiteStore implements Store on an embedded SQLite database. It backs
// local development and the unit tests of the store's SQL.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the SQLite database at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Every connection to ":memory:" is a fresh database, and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() {
	_ = s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return runMigrations(ctx, sqliteMigrations, sqlMigrator{db: s.db})
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	q, a := rebind(query, args)
	return s.db.QueryContext(ctx, q, a...)
}

func (s *SQLiteStore) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	q, a := rebind(query, args)
	return s.db.QueryRowContext(ctx, q, a...)
}

func (s *SQLiteStore) exec(ctx context.Context, query string, args ...any) error {
	q, a := rebind(query, args)
	_, err := s.db.ExecContext(ctx, q, a...)
	return err
}

// FindListings returns listings matching q.
func (s *SQLiteStore) FindListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, error) {
	query, args := q.ToSQL()

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var (
			l        domain.Listing
			postedAt sql.NullString
		)
		if err := rows.Scan(listingDest(&l, &postedAt)...); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		if postedAt.Valid && postedAt.String != "" {
			t, err := parseDate(postedAt.String)
			if err != nil {
				return nil, fmt.Errorf("parsing posted_at of %s: %w", l.ID, err)
			}
			l.PostedAt = &t
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// UpsertListing inserts or updates a listing by listing id.
func (s *SQLiteStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	var postedAt any
	if l.PostedAt != nil {
		postedAt = l.PostedAt.UTC().Format(timestampLayout)
	}
	if err := s.exec(ctx, queryUpsertListing, listingArgs(l, postedAt)...); err != nil {
		return fmt.Errorf("upserting listing %s: %w", l.ID, err)
	}
	return nil
}

// ResolveProduct returns the best product match for keyword.
func (s *SQLiteStore) ResolveProduct(ctx context.Context, keyword string) (*domain.Product, error) {
	return scanSQLProduct(s.queryRow(ctx, queryResolveProduct, resolveArgs(keyword)...))
}

// GetProduct retrieves a product by id.
func (s *SQLiteStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return scanSQLProduct(s.queryRow(ctx, queryGetProduct, id))
}

func scanSQLProduct(row scannable) (*domain.Product, error) {
	p := &domain.Product{}
	if err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.ModelSeries); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}
	return p, nil
}

// UpsertProduct inserts or updates a product by id.
func (s *SQLiteStore) UpsertProduct(ctx context.Context, p *domain.Product) error {
	if err := s.exec(ctx, queryUpsertProduct, p.ID, p.Name, p.Brand, p.ModelSeries); err != nil {
		return fmt.Errorf("upserting product %s: %w", p.ID, err)
	}
	return nil
}

// ListListedProductIDs returns the ids of products with at least one listing.
func (s *SQLiteStore) ListListedProductIDs(ctx context.Context) ([]string, error) {
	rows, err := s.query(ctx, queryListListedProductIDs)
	if err != nil {
		return nil, fmt.Errorf("querying product ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListPriceHistory returns daily records dated on or after since, oldest first.
func (s *SQLiteStore) ListPriceHistory(
	ctx context.Context,
	productID string,
	since time.Time,
) ([]domain.PriceHistoryRecord, error) {
	return s.queryHistory(ctx, queryListPriceHistory, productID, dateOnly(since).Format(dateLayout))
}

// RecentPriceHistory returns up to limit of the latest records, newest first.
func (s *SQLiteStore) RecentPriceHistory(
	ctx context.Context,
	productID string,
	limit int,
) ([]domain.PriceHistoryRecord, error) {
	return s.queryHistory(ctx, queryRecentPriceHistory, productID, limit)
}

func (s *SQLiteStore) queryHistory(ctx context.Context, query string, args ...any) ([]domain.PriceHistoryRecord, error) {
	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying price history: %w", err)
	}
	defer rows.Close()

	var records []domain.PriceHistoryRecord
	for rows.Next() {
		var (
			r    domain.PriceHistoryRecord
			date string
		)
		if err := rows.Scan(
			&r.ProductID, &date, &r.AveragePrice, &r.MinPrice, &r.MaxPrice, &r.ListingCount,
		); err != nil {
			return nil, fmt.Errorf("scanning price history: %w", err)
		}
		if r.Date, err = parseDate(date); err != nil {
			return nil, fmt.Errorf("parsing record_date %q: %w", date, err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// UpsertPriceHistory inserts or replaces the record for (product, date).
func (s *SQLiteStore) UpsertPriceHistory(ctx context.Context, r *domain.PriceHistoryRecord) error {
	if err := s.exec(ctx, queryUpsertPriceHistory,
		r.ProductID, dateOnly(r.Date).Format(dateLayout), r.AveragePrice, r.MinPrice, r.MaxPrice, r.ListingCount,
	); err != nil {
		return fmt.Errorf("upserting price history for %s: %w", r.ProductID, err)
	}
	return nil
}
