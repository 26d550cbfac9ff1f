package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ryhoangf/iValuate/internal/engine"
	"github.com/ryhoangf/iValuate/pkg/estimate"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// PriceEngine is the engine surface served by the product endpoints.
type PriceEngine interface {
	Search(ctx context.Context, req engine.SearchRequest) (*engine.SearchResult, error)
	MarketPrice(ctx context.Context, req engine.MarketPriceRequest) (*engine.MarketPriceResult, error)
	FeatureImpact(ctx context.Context, req engine.MarketPriceRequest) (*engine.FeatureImpactResult, error)
}

// ProductsHandler handles search and pricing requests.
type ProductsHandler struct {
	engine PriceEngine
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(eng PriceEngine) *ProductsHandler {
	return &ProductsHandler{engine: eng}
}

// --- Input/Output types ---

// SearchInput is the query string of the search endpoint. Numeric and
// boolean filters arrive as strings so malformed values can be rejected
// with a field-specific message.
type SearchInput struct {
	Keyword         string `query:"keyword"         doc:"Search keyword"                             example:"iPhone 13"`
	Condition       string `query:"condition"       doc:"Condition rank (S, A, B, C, D or all)"`
	Color           string `query:"color"           doc:"Color, or all"`
	Platform        string `query:"platform"        doc:"Source platform, or all"`
	BatteryStatus   string `query:"batteryStatus"   doc:"Battery status, or all"`
	ScreenCondition string `query:"screenCondition" doc:"Screen condition, or all"`
	BodyCondition   string `query:"bodyCondition"   doc:"Body condition, or all"`
	BatteryReplaced string `query:"batteryReplaced" doc:"Only listings with a replaced battery (1 or true)"`
	HasBox          string `query:"hasBox"          doc:"Only listings with the original box (1 or true)"`
	HasCharger      string `query:"hasCharger"      doc:"Only listings with a charger (1 or true)"`
	IsSimFree       string `query:"isSimFree"       doc:"Only SIM-free listings (1 or true)"`
	FullyFunctional string `query:"fullyFunctional" doc:"Only fully functional listings (1 or true)"`
	MinBattery      string `query:"minBattery"      doc:"Minimum battery health percentage"`
	MinPrice        string `query:"minPrice"        doc:"Minimum price"`
	MaxPrice        string `query:"maxPrice"        doc:"Maximum price"`
}

// SearchOutput is the response of the search endpoint.
type SearchOutput struct {
	Body *engine.SearchResult
}

// MarketPriceInput is the query string of the market price and feature
// impact endpoints.
type MarketPriceInput struct {
	Keyword       string `query:"keyword"        doc:"Product keyword"                 example:"iPhone 13 Pro"`
	Condition     string `query:"condition"      doc:"Condition rank hint (S, A, B, C, D)"`
	BatteryHealth string `query:"battery_health" doc:"Battery health hint, 0-100"`
}

// MarketPriceOutput is the response of the market price endpoint.
type MarketPriceOutput struct {
	Body *engine.MarketPriceResult
}

// FeatureImpactOutput is the response of the feature impact endpoint.
type FeatureImpactOutput struct {
	Body *engine.FeatureImpactResult
}

// --- Handlers ---

// Search returns listings matching a keyword and filters, their price
// summary and the facets of the keyword match.
func (h *ProductsHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	filters, err := input.filters()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	result, err := h.engine.Search(ctx, engine.SearchRequest{
		Keyword: input.Keyword,
		Filters: filters,
	})
	if err != nil {
		return nil, engineError("search", err)
	}

	return &SearchOutput{Body: result}, nil
}

// MarketPrice estimates the market range for the product best matching the
// keyword.
func (h *ProductsHandler) MarketPrice(ctx context.Context, input *MarketPriceInput) (*MarketPriceOutput, error) {
	req, err := input.request()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	result, err := h.engine.MarketPrice(ctx, req)
	if err != nil {
		return nil, engineError("market price", err)
	}

	return &MarketPriceOutput{Body: result}, nil
}

// FeatureImpact reports how much each hint moves the estimated average.
func (h *ProductsHandler) FeatureImpact(ctx context.Context, input *MarketPriceInput) (*FeatureImpactOutput, error) {
	req, err := input.request()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	result, err := h.engine.FeatureImpact(ctx, req)
	if err != nil {
		return nil, engineError("feature impact", err)
	}

	return &FeatureImpactOutput{Body: result}, nil
}

func (in *SearchInput) filters() (domain.ListingFilters, error) {
	f := domain.ListingFilters{
		Condition:       in.Condition,
		Color:           in.Color,
		Platform:        in.Platform,
		BatteryStatus:   in.BatteryStatus,
		ScreenCondition: in.ScreenCondition,
		BodyCondition:   in.BodyCondition,
		BatteryReplaced: parseFlag(in.BatteryReplaced),
		HasBox:          parseFlag(in.HasBox),
		HasCharger:      parseFlag(in.HasCharger),
		IsSimFree:       parseFlag(in.IsSimFree),
		FullyFunctional: parseFlag(in.FullyFunctional),
	}

	var err error
	if f.MinBattery, err = parseOptionalFloat("minBattery", in.MinBattery); err != nil {
		return f, err
	}
	if f.MinPrice, err = parseOptionalFloat("minPrice", in.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parseOptionalFloat("maxPrice", in.MaxPrice); err != nil {
		return f, err
	}

	return f, nil
}

func (in *MarketPriceInput) request() (engine.MarketPriceRequest, error) {
	battery, err := parseOptionalPercent("battery_health", in.BatteryHealth)
	if err != nil {
		return engine.MarketPriceRequest{}, err
	}

	return engine.MarketPriceRequest{
		Keyword: in.Keyword,
		Hints: estimate.Hints{
			Condition:     in.Condition,
			BatteryHealth: battery,
		},
	}, nil
}

// RegisterProductRoutes registers the search and pricing endpoints with the
// Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/search",
		Summary:     "Search listings",
		Description: "Returns listings matching the keyword and filters ordered by price, " +
			"a price summary and the filter values available for the keyword.",
		Tags:   []string{"products"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "get-market-price",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/market-price",
		Summary:     "Estimate market price",
		Description: "Estimates the fair market price range of the best matching product, " +
			"adjusted by optional condition and battery health hints.",
		Tags: []string{"products"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.MarketPrice)

	huma.Register(api, huma.Operation{
		OperationID: "get-feature-impact",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/feature-impact",
		Summary:     "Explain hint impact",
		Description: "Reports the percentage change each hint makes to the estimated average price.",
		Tags:        []string{"products"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusNotFound,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.FeatureImpact)
}
