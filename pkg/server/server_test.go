package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRequest(
	t *testing.T, handler http.Handler, path, apiKey string,
) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthNoAuth(t *testing.T) {
	srv := NewServer(WithAPIKey("secret"))
	rec := testRequest(t, srv.Handler(), "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAPIKeyRequired(t *testing.T) {
	srv := NewServer(WithAPIKey("secret"))
	handler := srv.Handler()

	rec := testRequest(t, handler, "/api/season-results/seasons", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = testRequest(t, handler, "/api/season-results/seasons", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBadParams(t *testing.T) {
	srv := NewServer(WithAPIKey("secret"))
	handler := srv.Handler()

	tests := []struct {
		name string
		path string
	}{
		{name: "season not a number", path: "/api/season-results/abc/standings"},
		{name: "round not a number", path: "/api/season-results/2024/xyz/weather"},
		{
			name: "invalid progression mode",
			path: "/api/season-results/abc/points-progression?mode=teams",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testRequest(t, handler, tt.path, "secret")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLapChartViewValidation(t *testing.T) {
	srv := NewServer(WithAPIKey("secret"))
	rec := testRequest(t, srv.Handler(),
		"/api/season-results/2024/1/lap-times/chart?view=bogus", "secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
