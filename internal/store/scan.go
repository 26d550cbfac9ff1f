package store

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// scannable abstracts pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// listingDest returns the scan destinations for baseListingsSelect, leaving
// posted_at to the caller since its wire type differs between drivers.
func listingDest(l *domain.Listing, postedAt any) []any {
	return []any{
		&l.ID, &l.ProductID, &l.Name, &l.ModelSeries,
		&l.Price, &l.Currency, &l.Condition,
		&l.Color, &l.BatteryStatus,
		&l.ScreenCondition, &l.BodyCondition,
		&l.BatteryHealth, &l.BatteryPercentage,
		&l.HasBox, &l.HasCharger, &l.IsSimFree, &l.FullyFunctional, &l.BatteryReplaced,
		&l.Platform, &l.SourceURL, postedAt,
	}
}

func listingArgs(l *domain.Listing, postedAt any) []any {
	currency := l.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return []any{
		l.ID, l.ProductID, l.Price, currency, string(l.Condition),
		l.Color, l.BatteryStatus, l.ScreenCondition, l.BodyCondition,
		l.BatteryHealth, l.BatteryPercentage,
		l.HasBox, l.HasCharger, l.IsSimFree, l.FullyFunctional, l.BatteryReplaced,
		l.Platform, l.SourceURL, postedAt,
	}
}

// resolveArgs returns the contains, exact and prefix patterns used by
// queryResolveProduct.
func resolveArgs(keyword string) []any {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	esc := escapeLike(kw)
	return []any{"%" + esc + "%", kw, esc + "%"}
}

var placeholderRE = regexp.MustCompile(`\$(\d+)`)

// rebind rewrites $n placeholders to ? and expands args so that each
// occurrence gets its own positional argument.
func rebind(query string, args []any) (string, []any) {
	var out []any
	rebound := placeholderRE.ReplaceAllStringFunc(query, func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil || n < 1 || n > len(args) {
			return m
		}
		out = append(out, args[n-1])
		return "?"
	})
	return rebound, out
}

// Date layouts accepted when reading TEXT date columns.
const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339Nano
)

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(timestampLayout, s)
}

// dateOnly truncates t to midnight UTC of its calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
