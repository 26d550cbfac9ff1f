package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryhoangf/iValuate/internal/seed"
	"github.com/ryhoangf/iValuate/internal/store"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

const fixtureYAML = `
products:
  - id: ip13
    name: iPhone 13
    brand: Apple
    model_series: iPhone 13
  - id: px7
    name: Pixel 7
    brand: Google
listings:
  - id: l1
    product_id: ip13
    price: 250
    condition: s
    color: blue
    battery_health: 96
    has_box: true
    platform: mercari
  - id: l2
    product_id: ip13
    price: 180
    condition: B
    battery_percentage: 81
history:
  - product_id: ip13
    date: "2026-03-01"
    avg_price: 210
    min_price: 180
    max_price: 250
    listing_count: 2
`

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "valid fixtures", yaml: fixtureYAML},
		{
			name:    "invalid YAML",
			yaml:    `{{{`,
			wantErr: "parsing fixture YAML",
		},
		{
			name: "listing references unknown product",
			yaml: `
products:
  - id: ip13
    name: iPhone 13
listings:
  - id: l1
    product_id: nope
    price: 1
`,
			wantErr: `listings[0]: unknown product "nope"`,
		},
		{
			name: "bad condition and negative price",
			yaml: `
products:
  - id: ip13
    name: iPhone 13
listings:
  - id: l1
    product_id: ip13
    price: -5
    condition: Z
`,
			wantErr: `unknown condition "Z"`,
		},
		{
			name: "bad history date",
			yaml: `
products:
  - id: ip13
    name: iPhone 13
history:
  - product_id: ip13
    date: 01/03/2026
`,
			wantErr: `history[0]: invalid date`,
		},
		{
			name: "product without name",
			yaml: `
products:
  - id: ip13
`,
			wantErr: "products[0]: id and name are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := seed.Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, f.Products, 2)
			assert.Len(t, f.Listings, 2)
			assert.Len(t, f.History, 1)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading fixture file")
}

func TestApply(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, err := store.NewSQLiteStore(ctx, store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.Migrate(ctx))

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))

	f, err := seed.Load(path)
	require.NoError(t, err)

	res, err := seed.Apply(ctx, s, f)
	require.NoError(t, err)
	assert.Equal(t, &seed.Result{Products: 2, Listings: 2, History: 1}, res)

	// Applying twice upserts rather than duplicating.
	_, err = seed.Apply(ctx, s, f)
	require.NoError(t, err)

	listings, err := s.FindListings(ctx, &store.ListingQuery{ProductID: "ip13"})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "l2", listings[0].ID)
	assert.Equal(t, domain.ConditionS, listings[1].Condition)
	assert.Equal(t, domain.DefaultCurrency, listings[1].Currency)
	require.NotNil(t, listings[0].BatteryPercentage)
	assert.Equal(t, 81, *listings[0].BatteryPercentage)

	since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	history, err := s.ListPriceHistory(ctx, "ip13", since)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 210.0, history[0].AveragePrice, 0)
	assert.Equal(t, 2, history[0].ListingCount)
}

func TestLoad_ExampleFixtures(t *testing.T) {
	t.Parallel()

	f, err := seed.Load(filepath.Join("..", "..", "configs", "fixtures.example.yaml"))
	require.NoError(t, err)
	assert.Len(t, f.Products, 2)
	assert.Len(t, f.Listings, 3)
	assert.Len(t, f.History, 2)
}
