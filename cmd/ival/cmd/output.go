package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ryhoangf/iValuate/internal/engine"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSearchResult(w io.Writer, r *engine.SearchResult) error {
	tw := newTabWriter(w)
	tw.writef("ID\tPRODUCT\tPRICE\tCOND\tBATTERY\tCOLOR\tPLATFORM\n")
	for i := range r.Listings {
		l := &r.Listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Name, 32),
			formatPrice(l.Price, l.Currency),
			dash(string(l.Condition)),
			formatBattery(l),
			dash(l.Color),
			dash(l.Platform),
		)
	}
	if r.Summary != nil {
		s := r.Summary
		tw.writef("\nCount:\t%d\n", s.Count)
		tw.writef("Min:\t%s\n", formatPrice(s.Min, ""))
		tw.writef("Max:\t%s\n", formatPrice(s.Max, ""))
		tw.writef("Average:\t%s\n", formatPrice(s.Average, ""))
		tw.writef("Median:\t%s\n", formatPrice(s.Median, ""))
	}
	return tw.finish()
}

func printFacets(w io.Writer, f *domain.FilterFacets) error {
	tw := newTabWriter(w)
	tw.writef("\nFILTER\tVALUES\n")
	tw.writef("condition\t%s\n", joinOrDash(f.Conditions))
	tw.writef("color\t%s\n", joinOrDash(f.Colors))
	tw.writef("platform\t%s\n", joinOrDash(f.Platforms))
	tw.writef("battery status\t%s\n", joinOrDash(f.BatteryStatuses))
	tw.writef("screen\t%s\n", joinOrDash(f.ScreenConditions))
	tw.writef("body\t%s\n", joinOrDash(f.BodyConditions))
	tw.writef("battery health\t%g - %g\n", f.BatteryHealth.Min, f.BatteryHealth.Max)
	tw.writef("price\t%s - %s\n", formatPrice(f.Price.Min, ""), formatPrice(f.Price.Max, ""))
	return tw.finish()
}

func printMarketPrice(w io.Writer, r *engine.MarketPriceResult) error {
	tw := newTabWriter(w)
	rng := r.MarketPriceRange
	tw.writef("Product:\t%s (%s)\n", r.Product.Name, r.Product.ID)
	if r.Product.Brand != "" {
		tw.writef("Brand:\t%s\n", r.Product.Brand)
	}
	tw.writef("Range:\t%s - %s\n", formatPrice(rng.Min, rng.Currency), formatPrice(rng.Max, rng.Currency))
	tw.writef("Average:\t%s\n", formatPrice(rng.Average, rng.Currency))
	tw.writef("Median:\t%s\n", formatPrice(rng.Median, rng.Currency))
	tw.writef("Confidence:\t%.2f (%s)\n", rng.Confidence, r.Source)
	tw.writef("Data points:\t%d\n", r.DataPoints)
	tw.writef("Updated:\t%s\n", r.LastUpdated.Format("2006-01-02 15:04:05"))

	if len(r.SimilarListings) > 0 {
		tw.writef("\nID\tPRICE\tDIFF\tCOND\tPLATFORM\n")
		for i := range r.SimilarListings {
			s := &r.SimilarListings[i]
			tw.writef("%s\t%s\t%+.0f\t%s\t%s\n",
				s.ID,
				formatPrice(s.Price, s.Currency),
				s.PriceDiff,
				dash(string(s.Condition)),
				dash(s.Platform),
			)
		}
	}
	return tw.finish()
}

func printFeatureImpact(w io.Writer, r *engine.FeatureImpactResult) error {
	tw := newTabWriter(w)
	tw.writef("Product:\t%s (%s)\n", r.Product.Name, r.Product.ID)
	tw.writef("Base average:\t%s\n", formatPrice(r.Base.Average, ""))
	tw.writef("Adjusted average:\t%s\n", formatPrice(r.Adjusted.Average, ""))
	tw.writef("\nHINT\tIMPACT\tDESCRIPTION\n")
	tw.writef("condition\t%s\t%s\n", r.Condition.Impact, dash(r.Condition.Description))
	tw.writef("battery health\t%s\t%s\n", r.BatteryHealth.Impact, dash(r.BatteryHealth.Description))
	tw.writef("total\t%s\t\n", r.Total)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatPrice renders whole amounts with thousands separators.
func formatPrice(v float64, currency string) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	if currency != "" {
		out += " " + currency
	}
	return out
}

func formatBattery(l *domain.Listing) string {
	v, ok := l.EffectiveBattery()
	if !ok {
		return "-"
	}
	return strconv.Itoa(v) + "%"
}

func joinOrDash(vals []string) string {
	if len(vals) == 0 {
		return "-"
	}
	return strings.Join(vals, ", ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
