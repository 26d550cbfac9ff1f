//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ryhoangf/iValuate/internal/store"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ivaluate_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, store.WithPoolSize(4))
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_Migrate_Idempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_FindListings(t *testing.T) {
	s := setupPostgres(t)
	seedCatalog(t, s)
	ctx := context.Background()

	t.Run("keyword orders by price then insertion", func(t *testing.T) {
		got, err := s.FindListings(ctx, &store.ListingQuery{Keyword: "iphone 13"})
		require.NoError(t, err)
		assert.Equal(t, []string{"l2", "l3", "l1", "l4"}, listingIDs(got))
	})

	t.Run("min battery skips missing readings", func(t *testing.T) {
		got, err := s.FindListings(ctx, &store.ListingQuery{
			Filters: domain.ListingFilters{MinBattery: ptr(85.5)},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"l2", "l1"}, listingIDs(got))
	})

	t.Run("scans nullable columns", func(t *testing.T) {
		got, err := s.FindListings(ctx, &store.ListingQuery{ProductID: "ip13", Filters: domain.ListingFilters{HasBox: true}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].PostedAt)
		require.NotNil(t, got[0].BatteryHealth)
		assert.Equal(t, 91, *got[0].BatteryHealth)
		assert.Nil(t, got[0].BatteryPercentage)
	})
}

func TestPostgresStore_ResolveProduct(t *testing.T) {
	s := setupPostgres(t)
	seedCatalog(t, s)
	ctx := context.Background()

	p, err := s.ResolveProduct(ctx, "iPhone 13")
	require.NoError(t, err)
	assert.Equal(t, "ip13", p.ID)

	p, err = s.ResolveProduct(ctx, "pro max")
	require.NoError(t, err)
	assert.Equal(t, "ip13pm", p.ID)

	_, err = s.ResolveProduct(ctx, "galaxy")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_PriceHistory(t *testing.T) {
	s := setupPostgres(t)
	seedCatalog(t, s)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }
	for d := 1; d <= 3; d++ {
		require.NoError(t, s.UpsertPriceHistory(ctx, &domain.PriceHistoryRecord{
			ProductID: "ip13", Date: day(d), AveragePrice: float64(d) * 1000,
			MinPrice: float64(d) * 900, MaxPrice: float64(d) * 1100, ListingCount: d,
		}))
	}

	got, err := s.ListPriceHistory(ctx, "ip13", day(2))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Date.Equal(day(2)))

	recent, err := s.RecentPriceHistory(ctx, "ip13", 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, recent[0].Date.Equal(day(3)))

	ids, err := s.ListListedProductIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ip13", "ip13p", "px7"}, ids)
}
