// Package seed loads catalog fixtures (products, listings and price
// history) from YAML into a store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ryhoangf/iValuate/internal/store"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

// Fixtures is the document layout of a seed file.
type Fixtures struct {
	Products []Product `yaml:"products"`
	Listings []Listing `yaml:"listings"`
	History  []History `yaml:"history"`
}

// Product is a catalog entry fixture.
type Product struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Brand       string `yaml:"brand"`
	ModelSeries string `yaml:"model_series"`
}

// Listing is a listing fixture.
type Listing struct {
	ID              string     `yaml:"id"`
	ProductID       string     `yaml:"product_id"`
	Price           float64    `yaml:"price"`
	Currency        string     `yaml:"currency"`
	Condition       string     `yaml:"condition"`
	Color           string     `yaml:"color"`
	BatteryStatus   string     `yaml:"battery_status"`
	ScreenCondition string     `yaml:"screen_condition"`
	BodyCondition   string     `yaml:"body_condition"`
	BatteryHealth   *int       `yaml:"battery_health"`
	BatteryPercent  *int       `yaml:"battery_percentage"`
	HasBox          bool       `yaml:"has_box"`
	HasCharger      bool       `yaml:"has_charger"`
	IsSimFree       bool       `yaml:"is_sim_free"`
	FullyFunctional bool       `yaml:"fully_functional"`
	BatteryReplaced bool       `yaml:"battery_replaced"`
	Platform        string     `yaml:"platform"`
	SourceURL       string     `yaml:"source_url"`
	PostedAt        *time.Time `yaml:"posted_at"`
}

// History is a daily price history fixture. Date is YYYY-MM-DD.
type History struct {
	ProductID    string  `yaml:"product_id"`
	Date         string  `yaml:"date"`
	AveragePrice float64 `yaml:"avg_price"`
	MinPrice     float64 `yaml:"min_price"`
	MaxPrice     float64 `yaml:"max_price"`
	ListingCount int     `yaml:"listing_count"`
}

// Result counts the rows written by Apply.
type Result struct {
	Products int
	Listings int
	History  int
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates fixture YAML.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture YAML: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("validating fixtures: %w", err)
	}
	return &f, nil
}

func (f *Fixtures) validate() error {
	var errs []error

	known := make(map[string]struct{}, len(f.Products))
	for i, p := range f.Products {
		if p.ID == "" || p.Name == "" {
			errs = append(errs, fmt.Errorf("products[%d]: id and name are required", i))
		}
		known[p.ID] = struct{}{}
	}

	for i, l := range f.Listings {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("listings[%d]: id is required", i))
		}
		if l.Price < 0 {
			errs = append(errs, fmt.Errorf("listings[%d]: price must not be negative", i))
		}
		if l.Condition != "" {
			if _, ok := domain.ParseConditionRank(l.Condition); !ok {
				errs = append(errs, fmt.Errorf("listings[%d]: unknown condition %q", i, l.Condition))
			}
		}
		if _, ok := known[l.ProductID]; !ok {
			errs = append(errs, fmt.Errorf("listings[%d]: unknown product %q", i, l.ProductID))
		}
	}

	for i, h := range f.History {
		if _, err := time.Parse(time.DateOnly, h.Date); err != nil {
			errs = append(errs, fmt.Errorf("history[%d]: invalid date %q", i, h.Date))
		}
		if _, ok := known[h.ProductID]; !ok {
			errs = append(errs, fmt.Errorf("history[%d]: unknown product %q", i, h.ProductID))
		}
	}

	return errors.Join(errs...)
}

// Apply upserts every fixture into s. Products are written first so that
// listings and history rows can reference them.
func Apply(ctx context.Context, s store.Store, f *Fixtures) (*Result, error) {
	res := &Result{}

	for i := range f.Products {
		p := f.Products[i].toDomain()
		if err := s.UpsertProduct(ctx, &p); err != nil {
			return res, fmt.Errorf("upserting product %s: %w", p.ID, err)
		}
		res.Products++
	}

	for i := range f.Listings {
		l := f.Listings[i].toDomain()
		if err := s.UpsertListing(ctx, &l); err != nil {
			return res, fmt.Errorf("upserting listing %s: %w", l.ID, err)
		}
		res.Listings++
	}

	for i := range f.History {
		r := f.History[i].toDomain()
		if err := s.UpsertPriceHistory(ctx, &r); err != nil {
			return res, fmt.Errorf("upserting history %s/%s: %w", r.ProductID, f.History[i].Date, err)
		}
		res.History++
	}

	return res, nil
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		ModelSeries: p.ModelSeries,
	}
}

func (l Listing) toDomain() domain.Listing {
	cond, _ := domain.ParseConditionRank(l.Condition)
	currency := l.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return domain.Listing{
		ID:                l.ID,
		ProductID:         l.ProductID,
		Price:             l.Price,
		Currency:          currency,
		Condition:         cond,
		Color:             l.Color,
		BatteryStatus:     l.BatteryStatus,
		ScreenCondition:   l.ScreenCondition,
		BodyCondition:     l.BodyCondition,
		BatteryHealth:     l.BatteryHealth,
		BatteryPercentage: l.BatteryPercent,
		HasBox:            l.HasBox,
		HasCharger:        l.HasCharger,
		IsSimFree:         l.IsSimFree,
		FullyFunctional:   l.FullyFunctional,
		BatteryReplaced:   l.BatteryReplaced,
		Platform:          l.Platform,
		SourceURL:         l.SourceURL,
		PostedAt:          l.PostedAt,
	}
}

// toDomain assumes validate has accepted the date.
func (h History) toDomain() domain.PriceHistoryRecord {
	d, _ := time.Parse(time.DateOnly, h.Date)
	return domain.PriceHistoryRecord{
		ProductID:    h.ProductID,
		Date:         d,
		AveragePrice: h.AveragePrice,
		MinPrice:     h.MinPrice,
		MaxPrice:     h.MaxPrice,
		ListingCount: h.ListingCount,
	}
}
