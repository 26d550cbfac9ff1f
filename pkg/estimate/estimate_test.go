package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/ryhoangf/iValuate/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestFromHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		agg    *domain.HistoricalAggregate
		want   domain.PriceRangeEstimate
		wantOK bool
	}{
		{
			name:   "nil aggregate",
			agg:    nil,
			wantOK: false,
		},
		{
			name:   "zero average is unusable",
			agg:    &domain.HistoricalAggregate{AveragePrice: 0, StdDev: 10},
			wantOK: false,
		},
		{
			name: "recorded stddev",
			agg: &domain.HistoricalAggregate{
				AveragePrice: 1000, StdDev: 100, AvgMinPrice: 900, AvgMaxPrice: 1120,
			},
			want:   domain.PriceRangeEstimate{Min: 900, Max: 1100, Average: 1000, Median: 1010, Confidence: 0.85},
			wantOK: true,
		},
		{
			name: "missing stddev uses 15 percent spread",
			agg: &domain.HistoricalAggregate{
				AveragePrice: 1000, AvgMinPrice: 950, AvgMaxPrice: 1050,
			},
			want:   domain.PriceRangeEstimate{Min: 850, Max: 1150, Average: 1000, Median: 1000, Confidence: 0.85},
			wantOK: true,
		},
		{
			name: "median clamped into range",
			agg: &domain.HistoricalAggregate{
				AveragePrice: 1000, StdDev: 10, AvgMinPrice: 1000, AvgMaxPrice: 1400,
			},
			want:   domain.PriceRangeEstimate{Min: 990, Max: 1010, Average: 1000, Median: 1010, Confidence: 0.85},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FromHistory(tt.agg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFromListings(t *testing.T) {
	t.Parallel()

	got, ok := FromListings([]float64{100, 200, 300, 400})
	assert.True(t, ok)
	// mean 250, population stddev sqrt(12500) ~ 111.8, median 250
	assert.Equal(t, domain.PriceRangeEstimate{
		Min: 138, Max: 362, Average: 250, Median: 250, Confidence: 0.70,
	}, got)

	_, ok = FromListings(nil)
	assert.False(t, ok)
}

func TestFromListings_SingleListing(t *testing.T) {
	t.Parallel()

	got, ok := FromListings([]float64{5000})
	assert.True(t, ok)
	assert.Equal(t, domain.PriceRangeEstimate{
		Min: 5000, Max: 5000, Average: 5000, Median: 5000, Confidence: 0.70,
	}, got)
}

func TestConfidenceIsFixedPerSource(t *testing.T) {
	t.Parallel()

	h, _ := FromHistory(&domain.HistoricalAggregate{AveragePrice: 123, StdDev: 7})
	l, _ := FromListings([]float64{1, 2, 3})
	assert.Equal(t, 0.85, h.Confidence)
	assert.Equal(t, 0.70, l.Confidence)

	adjusted := Adjust(h, Hints{Condition: "D", BatteryHealth: ptr(50)})
	assert.Equal(t, 0.85, adjusted.Confidence, "adjustments never touch confidence")
}

func TestConditionMultiplier(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"S": 1.15, "A": 1.05, "B": 1.00, "C": 0.90, "D": 0.75,
		"s": 1.15, "Z": 1.00, "": 1.00, "excellent": 1.00,
	}
	for in, want := range tests {
		assert.Equal(t, want, ConditionMultiplier(in), "rank %q", in)
	}
}

func TestBatteryMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		health int
		want   float64
	}{
		{100, 1.05}, {95, 1.05},
		{94, 1.00}, {85, 1.00},
		{84, 0.95}, {80, 0.95},
		{79, 0.90}, {70, 0.90},
		{69, 0.85}, {0, 0.85},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BatteryMultiplier(tt.health), "health %d", tt.health)
	}
}

func TestAdjust_SequentialComposition(t *testing.T) {
	t.Parallel()

	base := domain.PriceRangeEstimate{Min: 100, Max: 200, Average: 150, Median: 150, Confidence: 0.85}

	step1 := Adjust(base, Hints{Condition: "S"})
	assert.Equal(t, domain.PriceRangeEstimate{
		Min: 115, Max: 230, Average: 173, Median: 173, Confidence: 0.85,
	}, step1)

	step2 := Adjust(base, Hints{Condition: "S", BatteryHealth: ptr(96)})
	assert.Equal(t, Scale(step1, 1.05), step2)
	assert.Equal(t, domain.PriceRangeEstimate{
		Min: 121, Max: 242, Average: 182, Median: 182, Confidence: 0.85,
	}, step2)

	// Applying both multipliers to the unadjusted base would give 181.
	assert.NotEqual(t, 181.0, step2.Average)
}

func TestAdjust_RoundsAfterEachStage(t *testing.T) {
	t.Parallel()

	base := domain.PriceRangeEstimate{Min: 10, Max: 10, Average: 10, Median: 10, Confidence: 0.70}

	// D: 10*0.75 = 7.5 -> 8, then <70: 8*0.85 = 6.8 -> 7.
	// Independent composition would be round(10*0.6375) = 6.
	got := Adjust(base, Hints{Condition: "D", BatteryHealth: ptr(65)})
	assert.Equal(t, 7.0, got.Min)
	assert.Equal(t, 7.0, got.Average)
}

func TestAdjust_NoHints(t *testing.T) {
	t.Parallel()

	base := domain.PriceRangeEstimate{Min: 1, Max: 3, Average: 2, Median: 2, Confidence: 0.70}
	assert.Equal(t, base, Adjust(base, Hints{}))
	assert.True(t, Hints{}.Empty())
	assert.False(t, Hints{Condition: "A"}.Empty())
}

func TestAdjust_UnknownConditionIsNeutral(t *testing.T) {
	t.Parallel()

	base := domain.PriceRangeEstimate{Min: 90, Max: 110, Average: 100, Median: 100, Confidence: 0.70}
	assert.Equal(t, base, Adjust(base, Hints{Condition: "mint"}))
}
