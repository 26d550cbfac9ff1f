package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// rollupStaleAfter is how long without a rollup before the panel turns red.
const rollupStaleAfter = 26 * 3600

// LastRollup shows time since the last completed history rollup.
func LastRollup() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Rollup").
		Description("Time since the last completed price history rollup").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`time() - `+JobSelector("ivaluate_rollup_last_success_timestamp"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(rollupStaleAfter/2, rollupStaleAfter)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RollupRecords shows history records written and per-product failures per
// rollup window.
func RollupRecords() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rollup Records").
		Description("Price history records written and per-product failures").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`sum(increase(`+JobSelector("ivaluate_rollup_products_total")+`[1h]))`, "written", "A")).
		WithTarget(PromQuery(`sum(increase(`+JobSelector("ivaluate_rollup_errors_total")+`[1h]))`, "failed", "B")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// RollupDuration shows p95 rollup duration.
func RollupDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rollup Duration (p95)").
		Description("95th percentile price history rollup duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(Quantile(0.95, "ivaluate_rollup_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
