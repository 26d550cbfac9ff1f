package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchLatency shows p50 and p95 search duration.
func SearchLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Search Latency").
		Description("Listing search duration including facet derivation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(Quantile(0.50, "ivaluate_search_duration_seconds"), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, "ivaluate_search_duration_seconds"), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchResultSize shows how many listings searches return.
func SearchResultSize() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Search Result Size").
		Description("Distribution of listings returned per search over the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`sum(increase(`+JobSelector("ivaluate_search_result_listings_bucket")+`[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// MarketPriceLatency shows p95 market price estimation duration.
func MarketPriceLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Market Price Latency (p95)").
		Description("95th percentile market price estimation duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(Quantile(0.95, "ivaluate_market_price_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EstimatesBySource shows estimates per minute split by history and
// listings fallback.
func EstimatesBySource() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimates / min by Source").
		Description("Estimates backed by price history versus the current-listings fallback").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ivaluate:estimates:rate5m * 60`, "{{source}}", "A")).
		FillOpacity(20).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EstimateFailures shows failed market price requests per minute by reason.
func EstimateFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimate Failures / min").
		Description("Failed market price requests by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ivaluate:estimate_failures:rate5m * 60`, "{{reason}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
