package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ryhoangf/iValuate/tools/dashgen/dashboards"
	"github.com/ryhoangf/iValuate/tools/dashgen/rules"
	"github.com/ryhoangf/iValuate/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "ivaluate-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "iValuate Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 15, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "ivaluate-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	assert.Equal(t, "ivaluate-recording", cr.Spec.Groups[0].Name)
	assert.Equal(t, []string{
		"ivaluate:http_requests:rate5m",
		"ivaluate:http_errors:rate5m",
		"ivaluate:estimates:rate5m",
		"ivaluate:estimate_failures:rate5m",
		"ivaluate:rollup_errors:rate1h",
	}, cr.Records())

	// Every recorded series must be usable by the dashboard and alerts.
	for _, name := range cr.Records() {
		assert.True(t, KnownMetrics[name], "%s missing from KnownMetrics", name)
	}

	res := validate.Exprs(cr.Exprs(), KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "ivaluate-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "ivaluate-alerts", group.Name)

	expectedAlerts := []string{
		"IvaluateDown",
		"IvaluateReadinessDown",
		"IvaluateHighErrorRate",
		"IvaluateUpstreamFailures",
		"IvaluateRollupStale",
		"IvaluateRollupErrors",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.For, "alert %s missing for", rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	res := validate.Exprs(cr.Exprs(), KnownMetrics)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)
}

func TestValidateExprs(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"ivaluate_search_duration_seconds": true}

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{
			name: "histogram bucket folds to base name",
			expr: `histogram_quantile(0.95, sum(rate(ivaluate_search_duration_seconds_bucket[5m])) by (le))`,
		},
		{
			name:    "unknown metric",
			expr:    `rate(ivaluate_missing_total[5m])`,
			wantErr: `unknown metric "ivaluate_missing_total"`,
		},
		{
			name:    "parse error",
			expr:    `rate(ivaluate_search_duration_seconds_count[5m]`,
			wantErr: "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validate.Exprs([]string{tt.expr}, known)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "unexpected errors: %v", res.Errors)
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, false))

	dashPath := filepath.Join(cfg.OutputDir, "grafana", "data", "ivaluate-overview.json")
	data, err := os.ReadFile(dashPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "ivaluate-overview", doc["uid"])

	for _, name := range []string{"ivaluate-recording-rules.yaml", "ivaluate-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "prometheus", name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), generatedHeader), "%s missing header", name)
	}
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
