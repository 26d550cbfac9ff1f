package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	mw "github.com/ryhoangf/iValuate/internal/api/middleware"
	"github.com/ryhoangf/iValuate/internal/metrics"
)

func newLimitedEcho(perSecond float64, burst int) *echo.Echo {
	e := echo.New()
	e.Use(mw.RateLimit(perSecond, burst))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/api/v1/products/search", ok)
	e.GET("/healthz", ok)
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name        string
		perSecond   float64
		burst       int
		path        string
		requests    int
		wantCodes   []int
		wantLimited float64
	}{
		{
			name:        "burst then reject",
			perSecond:   0.001,
			burst:       2,
			path:        "/api/v1/products/search",
			requests:    3,
			wantCodes:   []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
			wantLimited: 1,
		},
		{
			name:      "disabled limiter passes everything",
			perSecond: 0,
			path:      "/api/v1/products/search",
			requests:  3,
			wantCodes: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name:      "probes bypass the limiter",
			perSecond: 0.001,
			burst:     1,
			path:      "/healthz",
			requests:  3,
			wantCodes: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.HTTPRateLimitedTotal)
			e := newLimitedEcho(tt.perSecond, tt.burst)

			for i := range tt.requests {
				rec := serve(e, tt.path)
				assert.Equal(t, tt.wantCodes[i], rec.Code, "request %d", i)
				if rec.Code == http.StatusTooManyRequests {
					assert.NotEmpty(t, rec.Header().Get("Retry-After"))
					assert.Contains(t, rec.Body.String(), "rate limit exceeded")
				}
			}

			assert.InDelta(t, tt.wantLimited, testutil.ToFloat64(metrics.HTTPRateLimitedTotal)-before, 0)
		})
	}
}
