package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRateLimitedTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, SearchDuration)
	assert.NotNil(t, SearchResultListings)
	assert.NotNil(t, MarketPriceDuration)
	assert.NotNil(t, EstimatesTotal)
	assert.NotNil(t, EstimateFailuresTotal)
	assert.NotNil(t, RollupDuration)
	assert.NotNil(t, RollupProductsTotal)
	assert.NotNil(t, RollupErrorsTotal)
	assert.NotNil(t, RollupLastSuccessTimestamp)
}

func TestMetricsGathered(t *testing.T) {
	t.Parallel()

	EstimatesTotal.WithLabelValues("history").Add(0)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	mf, ok := byName["ivaluate_estimates_total"]
	require.True(t, ok)
	assert.Equal(t, dto.MetricType_COUNTER, mf.GetType())

	_, ok = byName["ivaluate_rollup_last_success_timestamp"]
	assert.True(t, ok)
}
