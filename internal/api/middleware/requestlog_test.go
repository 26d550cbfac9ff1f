package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			path:   "/api/v1/products/search",
			status: http.StatusOK,
			wantLogFields: []string{
				"method=GET",
				"path=/api/v1/products/search",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "logs POST request",
			method: http.MethodPost,
			path:   "/api/v1/jobs/rollup",
			status: http.StatusAccepted,
			wantLogFields: []string{
				"method=POST",
				"status=202",
			},
		},
		{
			name:   "client error logged at warn",
			method: http.MethodGet,
			path:   "/api/v1/products/market-price",
			status: http.StatusNotFound,
			wantLogFields: []string{
				"level=WARN",
				"status=404",
			},
		},
		{
			name:          "uses provided request ID",
			method:        http.MethodGet,
			path:          "/test",
			status:        http.StatusOK,
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{
				"request_id=custom-req-id-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestLog(logger)(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			err := handler(c)
			require.NoError(t, err)

			logOutput := buf.String()
			for _, field := range tt.wantLogFields {
				assert.Contains(t, logOutput, field)
			}

			// Response should have the request ID header.
			respID := rec.Header().Get(requestIDHeader)
			assert.NotEmpty(t, respID)

			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}

			// Context should have request_id.
			assert.Equal(t, respID, RequestID(c))
		})
	}
}

func TestRequestLog_ProbeSuppression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		statuses []int
		// logged[i] reports whether the i-th request adds a log line.
		logged []bool
	}{
		{
			name:     "healthz successes after the first are dropped",
			path:     "/healthz",
			statuses: []int{http.StatusOK, http.StatusOK, http.StatusOK},
			logged:   []bool{true, false, false},
		},
		{
			name:     "readyz failures are always logged",
			path:     "/readyz",
			statuses: []int{http.StatusServiceUnavailable, http.StatusServiceUnavailable},
			logged:   []bool{true, true},
		},
		{
			name:     "readyz failure after suppressed success",
			path:     "/readyz",
			statuses: []int{http.StatusOK, http.StatusOK, http.StatusServiceUnavailable},
			logged:   []bool{true, false, true},
		},
		{
			name:     "api paths are never suppressed",
			path:     "/api/v1/products/search",
			statuses: []int{http.StatusOK, http.StatusOK},
			logged:   []bool{true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := echo.New()

			call := 0
			handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
				status := tt.statuses[call]
				call++
				return c.NoContent(status)
			})

			for i, status := range tt.statuses {
				before := buf.Len()

				req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
				require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

				if !tt.logged[i] {
					assert.Equal(t, before, buf.Len(), "request %d should not be logged", i)
					continue
				}

				line := buf.String()[before:]
				assert.Contains(t, line, "path="+tt.path, "request %d", i)
				if status >= http.StatusBadRequest {
					assert.Contains(t, line, "level=WARN", "request %d", i)
				}
			}
		})
	}
}

func TestRequestLog_SuppressionIsPerInstance(t *testing.T) {
	t.Parallel()

	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for range 2 {
		var buf bytes.Buffer
		handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(ok)

		req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
		require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

		assert.Contains(t, buf.String(), "path=/healthz")
	}
}
