// Package engine orchestrates listing search, market price estimation and
// price-history maintenance on top of the store boundary.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ryhoangf/iValuate/internal/store"
	"github.com/ryhoangf/iValuate/internal/trend"
	domain "github.com/ryhoangf/iValuate/pkg/types"
)

const (
	instrumentationName = "github.com/ryhoangf/iValuate/internal/engine"

	// DefaultSimilarLimit caps the similar listings returned per estimate.
	DefaultSimilarLimit = 20
)

// Engine serves search and market price requests. It holds no mutable
// state between calls and is safe for concurrent use.
type Engine struct {
	store store.Store
	trend *trend.Reader
	log   *slog.Logger

	windowDays   int
	similarLimit int
	currency     string
	now          func() time.Time

	tracer    trace.Tracer
	estimates metric.Int64Counter
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:        s,
		log:          slog.Default(),
		windowDays:   trend.DefaultWindowDays,
		similarLimit: DefaultSimilarLimit,
		currency:     domain.DefaultCurrency,
		now:          time.Now,
		tracer:       otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(eng)
	}

	eng.trend = trend.NewReader(s,
		trend.WithWindowDays(eng.windowDays),
		trend.WithClock(eng.now),
	)

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"ivaluate.engine.estimates",
		metric.WithDescription("Price estimates produced, by data source."),
	)
	if err != nil {
		eng.log.Warn("creating estimates counter", "error", err)
	}
	eng.estimates = counter

	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWindowDays sets the historical lookback window.
func WithWindowDays(days int) EngineOption {
	return func(e *Engine) {
		if days > 0 {
			e.windowDays = days
		}
	}
}

// WithSimilarLimit sets the maximum number of similar listings returned.
func WithSimilarLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.similarLimit = n
		}
	}
}

// WithCurrency sets the currency tag reported on estimates.
func WithCurrency(c string) EngineOption {
	return func(e *Engine) {
		if c != "" {
			e.currency = c
		}
	}
}

// WithClock overrides the clock.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Store returns the underlying store.
func (eng *Engine) Store() store.Store {
	return eng.store
}

func normalizeKeyword(kw string) (string, error) {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return "", ErrInvalidRequest
	}
	return kw, nil
}

func (eng *Engine) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return eng.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
