// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/ryhoangf/iValuate/tools/dashgen/panels"
)

// OverviewUID is the stable dashboard uid.
const OverviewUID = "ivaluate-overview"

// BuildOverview constructs the iValuate overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("iValuate Overview").
		Uid(OverviewUID).
		Tags([]string{"ivaluate"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.RateLimitedStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Search").
		WithPanel(panels.SearchLatency()).
		WithPanel(panels.SearchResultSize()).
		WithPanel(panels.MarketPriceLatency()))

	b.WithRow(dashboard.NewRowBuilder("Estimation").
		WithPanel(panels.EstimatesBySource()).
		WithPanel(panels.EstimateFailures()))

	b.WithRow(dashboard.NewRowBuilder("History Rollup").
		WithPanel(panels.LastRollup()).
		WithPanel(panels.RollupRecords()).
		WithPanel(panels.RollupDuration()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
