package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ryhoangf/iValuate/internal/api/handlers"
	"github.com/ryhoangf/iValuate/internal/store"
	"github.com/ryhoangf/iValuate/internal/store/mocks"
)

func serveProbe(t *testing.T, p handlers.Pinger, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(p))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rec
}

func TestHealthz_NeverPingsStore(t *testing.T) {
	t.Parallel()

	// No expectations: any Ping call fails the test.
	rec := serveProbe(t, mocks.NewMockStore(t), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "store reachable",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "store unreachable",
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockStore := mocks.NewMockStore(t)
			mockStore.EXPECT().Ping(mock.Anything).Return(tt.pingErr)

			rec := serveProbe(t, mockStore, "/readyz")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestReadyz_SQLiteStore(t *testing.T) {
	t.Parallel()

	s, err := store.NewSQLiteStore(context.Background(), store.MemoryDSN)
	require.NoError(t, err)

	rec := serveProbe(t, s, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)

	s.Close()

	rec = serveProbe(t, s, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
