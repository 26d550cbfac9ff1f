package main

import "errors"

// KnownMetrics is the set of metric names exported by the iValuate server
// plus the recording rules the dashboard and alerts reference. Histograms
// are listed by base name.
var KnownMetrics = map[string]bool{
	// HTTP.
	"ivaluate_http_request_duration_seconds": true,
	"ivaluate_http_requests_total":           true,
	"ivaluate_http_rate_limited_total":       true,

	// Probes.
	"ivaluate_healthz_up": true,
	"ivaluate_readyz_up":  true,

	// Search and estimation.
	"ivaluate_search_duration_seconds":       true,
	"ivaluate_search_result_listings":        true,
	"ivaluate_market_price_duration_seconds": true,
	"ivaluate_estimates_total":               true,
	"ivaluate_estimate_failures_total":       true,

	// History rollup.
	"ivaluate_rollup_duration_seconds":       true,
	"ivaluate_rollup_products_total":         true,
	"ivaluate_rollup_errors_total":           true,
	"ivaluate_rollup_last_success_timestamp": true,

	// Recording rules.
	"ivaluate:http_requests:rate5m":     true,
	"ivaluate:http_errors:rate5m":       true,
	"ivaluate:estimates:rate5m":         true,
	"ivaluate:estimate_failures:rate5m": true,
	"ivaluate:rollup_errors:rate1h":     true,

	// Standard series.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig generates all artifacts into ../../deploy (relative to
// tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
