package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     ListingQuery
		wantHas   []string // substrings that must appear
		wantNotIn []string // substrings that must NOT appear
		wantArgs  []any
	}{
		{
			name:      "empty query selects everything",
			query:     ListingQuery{},
			wantHas:   []string{"FROM listings l", "ORDER BY l.price ASC, l.seq ASC"},
			wantNotIn: []string{"WHERE", "LIMIT"},
			wantArgs:  nil,
		},
		{
			name:  "keyword matches name or model series",
			query: ListingQuery{Keyword: "iPhone 13"},
			wantHas: []string{
				"WHERE (LOWER(p.name) LIKE $1 ESCAPE '\\' OR LOWER(COALESCE(p.model_series, '')) LIKE $2 ESCAPE '\\')",
			},
			wantArgs: []any{"%iphone 13%", "%iphone 13%"},
		},
		{
			name:     "keyword wildcards are escaped",
			query:    ListingQuery{Keyword: "100%_off"},
			wantArgs: []any{`%100\%\_off%`, `%100\%\_off%`},
		},
		{
			name:      "match-all sentinels are ignored",
			query:     ListingQuery{Filters: domain.ListingFilters{Condition: "all", Color: "ALL", Platform: ""}},
			wantNotIn: []string{"WHERE"},
		},
		{
			name:     "condition is normalized",
			query:    ListingQuery{Filters: domain.ListingFilters{Condition: "s"}},
			wantHas:  []string{"WHERE l.condition_rank = $1"},
			wantArgs: []any{"S"},
		},
		{
			name:     "product id filter",
			query:    ListingQuery{ProductID: "p-1"},
			wantHas:  []string{"WHERE l.product_id = $1"},
			wantArgs: []any{"p-1"},
		},
		{
			name:     "false flags impose nothing",
			query:    ListingQuery{Filters: domain.ListingFilters{HasBox: true, HasCharger: false}},
			wantHas:  []string{"WHERE l.has_box = $1"},
			wantArgs: []any{true},
		},
		{
			name:     "min battery coalesces health and percentage",
			query:    ListingQuery{Filters: domain.ListingFilters{MinBattery: ptr(85.0)}},
			wantHas:  []string{"COALESCE(l.battery_health, l.battery_percentage)", ">= $1"},
			wantArgs: []any{85.0},
		},
		{
			name:  "price band",
			query: ListingQuery{Filters: domain.ListingFilters{MinPrice: ptr(100.0), MaxPrice: ptr(200.0)}},
			wantHas: []string{
				"WHERE l.price >= $1 AND l.price <= $2",
			},
			wantArgs: []any{100.0, 200.0},
		},
		{
			name:    "limit",
			query:   ListingQuery{Limit: 20},
			wantHas: []string{"LIMIT 20"},
		},
		{
			name: "combined filters keep declaration order",
			query: ListingQuery{
				Keyword: "pixel",
				Filters: domain.ListingFilters{
					Condition:       "A",
					Color:           "black",
					IsSimFree:       true,
					FullyFunctional: true,
					MaxPrice:        ptr(5_000_000.0),
				},
			},
			wantHas: []string{
				"l.condition_rank = $3",
				"l.color = $4",
				"l.is_sim_free = $5",
				"l.fully_functional = $6",
				"l.price <= $7",
			},
			wantArgs: []any{"%pixel%", "%pixel%", "A", "black", true, true, 5_000_000.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args := tt.query.ToSQL()

			for _, s := range tt.wantHas {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.wantNotIn {
				assert.NotContains(t, sql, s)
			}
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestListingQuery_Clauses(t *testing.T) {
	t.Parallel()

	q := ListingQuery{
		Keyword: "  ",
		Filters: domain.ListingFilters{
			BatteryStatus:   "good",
			ScreenCondition: "all",
			BodyCondition:   "scratched",
		},
	}

	clauses := q.Clauses()
	require.Len(t, clauses, 2)
	assert.Equal(t, "batteryStatus", clauses[0].Key)
	assert.Equal(t, "bodyCondition", clauses[1].Key)
}

func TestRebind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		args     []any
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "sequential",
			query:    "a = $1 AND b = $2",
			args:     []any{1, 2},
			wantSQL:  "a = ? AND b = ?",
			wantArgs: []any{1, 2},
		},
		{
			name:     "repeated placeholder is expanded",
			query:    "a LIKE $1 OR b LIKE $1 ORDER BY c = $2",
			args:     []any{"x", "y"},
			wantSQL:  "a LIKE ? OR b LIKE ? ORDER BY c = ?",
			wantArgs: []any{"x", "x", "y"},
		},
		{
			name:     "two digit placeholders",
			query:    "$10, $1",
			args:     []any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantSQL:  "?, ?",
			wantArgs: []any{10, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args := rebind(tt.query, tt.args)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestResolveArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"%iphone 13%", "iphone 13", "iphone 13%"}, resolveArgs("  iPhone 13 "))
}
