package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dropDatabas3/reviewrelay/internal/config"
)

func testConfig(t *testing.T, environ map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.FromMap(environ)
	require.NoError(t, err)
	return cfg
}

func TestBuildHandler_NilConfig(t *testing.T) {
	_, err := BuildHandler(nil, Options{})
	require.Error(t, err)
}

func TestBuildHandler_Unconfigured(t *testing.T) {
	h, err := BuildHandler(testConfig(t, nil), Options{Registry: prometheus.NewRegistry(), Logger: zap.NewNop()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/send-review",
		strings.NewReader(`{"name":"Alice","email":"a@example.org","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Server email not configured"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), `review_submissions_total{outcome="unconfigured"} 1`)
}

func TestBuildHandler_DefaultRegistry(t *testing.T) {
	h, err := BuildHandler(testConfig(t, nil), Options{Logger: zap.NewNop()})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig(t, map[string]string{"PORT": "8081"})
	srv := NewHTTPServer(cfg, http.NotFoundHandler())

	assert.Equal(t, ":8081", srv.Addr)
	assert.NotZero(t, srv.ReadHeaderTimeout)
	assert.NotZero(t, srv.WriteTimeout)
}
