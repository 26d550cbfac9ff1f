package engine

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ryhoangf/iValuate/pkg/estimate"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// FeatureEffect is the relative change one hint makes to the average.
type FeatureEffect struct {
	Impact      string `json:"impact"`
	Description string `json:"description"`
}

// FeatureImpactResult compares the unadjusted estimate with the estimate
// adjusted by the supplied hints.
type FeatureImpactResult struct {
	Product       domain.Product            `json:"product"`
	Base          domain.PriceRangeEstimate `json:"base"`
	Adjusted      domain.PriceRangeEstimate `json:"adjusted"`
	Condition     FeatureEffect             `json:"condition"`
	BatteryHealth FeatureEffect             `json:"batteryHealth"`
	Total         string                    `json:"total"`
}

// FeatureImpact reports how much each hint moves the estimated average.
// Each hint is measured alone against the base; Total is the combined
// sequential adjustment.
func (eng *Engine) FeatureImpact(ctx context.Context, req MarketPriceRequest) (_ *FeatureImpactResult, err error) {
	kw, err := normalizeKeyword(req.Keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: keyword is required", err)
	}

	ctx, span := eng.startSpan(ctx, "engine.FeatureImpact", attribute.String("keyword", kw))
	defer func() { endSpan(span, err) }()

	product, err := eng.resolve(ctx, kw)
	if err != nil {
		return nil, err
	}

	data, err := eng.gather(ctx, product, false)
	if err != nil {
		return nil, err
	}

	base, err := eng.pickBaseline(ctx, data)
	if err != nil {
		return nil, err
	}

	h := req.Hints
	res := &FeatureImpactResult{
		Product:  *product,
		Base:     base.estimate,
		Adjusted: estimate.Adjust(base.estimate, h),
		Condition: FeatureEffect{
			Impact:      "0%",
			Description: "No condition supplied",
		},
		BatteryHealth: FeatureEffect{
			Impact:      "0%",
			Description: "No battery health supplied",
		},
	}
	res.Total = percentChange(base.estimate.Average, res.Adjusted.Average)

	if h.Condition != "" {
		only := estimate.Adjust(base.estimate, estimate.Hints{Condition: h.Condition})
		res.Condition = FeatureEffect{
			Impact:      percentChange(base.estimate.Average, only.Average),
			Description: fmt.Sprintf("Condition %s affects price", h.Condition),
		}
	}
	if h.BatteryHealth != nil {
		only := estimate.Adjust(base.estimate, estimate.Hints{BatteryHealth: h.BatteryHealth})
		res.BatteryHealth = FeatureEffect{
			Impact:      percentChange(base.estimate.Average, only.Average),
			Description: fmt.Sprintf("Battery health %d%% affects price", *h.BatteryHealth),
		}
	}

	return res, nil
}

// percentChange formats (to-from)/from as a signed percentage with two
// decimals. A zero base has no meaningful change.
func percentChange(from, to float64) string {
	if from == 0 {
		return "0%"
	}
	return strconv.FormatFloat((to-from)/from*100, 'f', 2, 64) + "%"
}
