package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ryhoangf/iValuate/internal/engine"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// Search runs a keyword search with optional filters.
func (c *Client) Search(ctx context.Context, keyword string, f domain.ListingFilters) (*engine.SearchResult, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	setString(q, "condition", f.Condition)
	setString(q, "color", f.Color)
	setString(q, "platform", f.Platform)
	setString(q, "batteryStatus", f.BatteryStatus)
	setString(q, "screenCondition", f.ScreenCondition)
	setString(q, "bodyCondition", f.BodyCondition)
	setFlag(q, "batteryReplaced", f.BatteryReplaced)
	setFlag(q, "hasBox", f.HasBox)
	setFlag(q, "hasCharger", f.HasCharger)
	setFlag(q, "isSimFree", f.IsSimFree)
	setFlag(q, "fullyFunctional", f.FullyFunctional)
	setFloat(q, "minBattery", f.MinBattery)
	setFloat(q, "minPrice", f.MinPrice)
	setFloat(q, "maxPrice", f.MaxPrice)

	var result engine.SearchResult
	if err := c.get(ctx, "/api/v1/products/search", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarketPrice fetches the estimated market range for the product matching
// keyword. condition and batteryHealth are optional hints.
func (c *Client) MarketPrice(
	ctx context.Context,
	keyword, condition string,
	batteryHealth *int,
) (*engine.MarketPriceResult, error) {
	var result engine.MarketPriceResult
	if err := c.get(ctx, "/api/v1/products/market-price", hintQuery(keyword, condition, batteryHealth), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FeatureImpact fetches the per-hint effect on the estimated average.
func (c *Client) FeatureImpact(
	ctx context.Context,
	keyword, condition string,
	batteryHealth *int,
) (*engine.FeatureImpactResult, error) {
	var result engine.FeatureImpactResult
	if err := c.get(ctx, "/api/v1/products/feature-impact", hintQuery(keyword, condition, batteryHealth), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func hintQuery(keyword, condition string, batteryHealth *int) url.Values {
	q := url.Values{}
	q.Set("keyword", keyword)
	setString(q, "condition", condition)
	if batteryHealth != nil {
		q.Set("battery_health", strconv.Itoa(*batteryHealth))
	}
	return q
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setFlag(q url.Values, key string, v bool) {
	if v {
		q.Set(key, "true")
	}
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
