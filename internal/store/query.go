package store

import (
	"fmt"
	"strings"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// Op is a clause comparator.
type Op string

// Comparators understood by Clause.
const (
	OpEq       Op = "="
	OpGte      Op = ">="
	OpLte      Op = "<="
	OpContains Op = "contains" // case-insensitive substring
)

// Clause is one optional filter predicate. When Columns holds more than one
// expression the clause holds if any of them matches.
type Clause struct {
	Key     string
	Columns []string
	Op      Op
	Value   any
}

// Column expressions used by listing clauses.
const (
	colProductName  = "p.name"
	colModelSeries  = "COALESCE(p.model_series, '')"
	colProductID    = "l.product_id"
	colCondition    = "l.condition_rank"
	colColor        = "l.color"
	colPlatform     = "l.platform"
	colBatteryState = "l.battery_status"
	colScreen       = "l.screen_condition"
	colBody         = "l.body_condition"
	colBattery      = "CAST(COALESCE(l.battery_health, l.battery_percentage) AS DOUBLE PRECISION)"
	colPrice        = "l.price"
)

// Clauses folds the query into an ordered list of clauses. Absent and
// match-all filters contribute nothing.
func (q *ListingQuery) Clauses() []Clause {
	var clauses []Clause

	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		clauses = append(clauses, Clause{
			Key:     "keyword",
			Columns: []string{colProductName, colModelSeries},
			Op:      OpContains,
			Value:   kw,
		})
	}

	if q.ProductID != "" {
		clauses = append(clauses, Clause{Key: "productId", Columns: []string{colProductID}, Op: OpEq, Value: q.ProductID})
	}

	f := &q.Filters

	if !domain.IsMatchAll(f.Condition) {
		rank, _ := domain.ParseConditionRank(f.Condition)
		clauses = append(clauses, Clause{Key: "condition", Columns: []string{colCondition}, Op: OpEq, Value: string(rank)})
	}

	enumerated := []struct {
		key, column, value string
	}{
		{"color", colColor, f.Color},
		{"platform", colPlatform, f.Platform},
		{"batteryStatus", colBatteryState, f.BatteryStatus},
		{"screenCondition", colScreen, f.ScreenCondition},
		{"bodyCondition", colBody, f.BodyCondition},
	}
	for _, e := range enumerated {
		if domain.IsMatchAll(e.value) {
			continue
		}
		clauses = append(clauses, Clause{Key: e.key, Columns: []string{e.column}, Op: OpEq, Value: strings.TrimSpace(e.value)})
	}

	flags := []struct {
		key, column string
		set         bool
	}{
		{"batteryReplaced", "l.battery_replaced", f.BatteryReplaced},
		{"hasBox", "l.has_box", f.HasBox},
		{"hasCharger", "l.has_charger", f.HasCharger},
		{"isSimFree", "l.is_sim_free", f.IsSimFree},
		{"fullyFunctional", "l.fully_functional", f.FullyFunctional},
	}
	for _, fl := range flags {
		if fl.set {
			clauses = append(clauses, Clause{Key: fl.key, Columns: []string{fl.column}, Op: OpEq, Value: true})
		}
	}

	// A NULL coalesced battery never satisfies >=, so listings with neither
	// battery field fail a minBattery filter.
	if f.MinBattery != nil {
		clauses = append(clauses, Clause{Key: "minBattery", Columns: []string{colBattery}, Op: OpGte, Value: *f.MinBattery})
	}
	if f.MinPrice != nil {
		clauses = append(clauses, Clause{Key: "minPrice", Columns: []string{colPrice}, Op: OpGte, Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		clauses = append(clauses, Clause{Key: "maxPrice", Columns: []string{colPrice}, Op: OpLte, Value: *f.MaxPrice})
	}

	return clauses
}

// ToSQL builds the listing SELECT with a conjunctive WHERE clause and
// positional $n parameters.
func (q *ListingQuery) ToSQL() (string, []any) {
	var (
		conditions []string
		args       []any
	)

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, c := range q.Clauses() {
		conditions = append(conditions, c.render(next))
	}

	var sb strings.Builder
	sb.WriteString(baseListingsSelect)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY l.price ASC, l.seq ASC")
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}

	return sb.String(), args
}

func (c Clause) render(next func(any) string) string {
	parts := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		switch c.Op {
		case OpContains:
			pattern := "%" + escapeLike(strings.ToLower(fmt.Sprint(c.Value))) + "%"
			parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE %s ESCAPE '\\'", col, next(pattern)))
		default:
			parts = append(parts, fmt.Sprintf("%s %s %s", col, c.Op, next(c.Value)))
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
