package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kiwari-pos/barista/internal/auth"
	"github.com/kiwari-pos/barista/internal/config"
	"github.com/kiwari-pos/barista/internal/enum"
	"github.com/kiwari-pos/barista/internal/metrics"
	"github.com/kiwari-pos/barista/internal/pricing"
	"github.com/kiwari-pos/barista/internal/router"
	"github.com/kiwari-pos/barista/internal/ws"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, secret string) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	hub := ws.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	reg := prometheus.NewRegistry()
	return router.New(router.Deps{
		Config: &config.Config{
			AppEnv:         "test",
			JWTSecret:      secret,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Engine:   pricing.NewEngine(),
		Hub:      hub,
		Metrics:  metrics.New("beverage", reg),
		Gatherer: reg,
		Logger:   logger,
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, "")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestMenuRoute(t *testing.T) {
	r := newTestRouter(t, "secret")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/menu", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"STRAWBERRYSHAKE"`)
}

func TestQuotesRequireTokenWhenSecretSet(t *testing.T) {
	r := newTestRouter(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"order":"Chai"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token, err := auth.GenerateToken("secret", uuid.New(), "bar", enum.RoleTerminal, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"order":"Chai"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestMetricsExposeQuoteCounters(t *testing.T) {
	r := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"order":"Mohito"}`)))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `beverage_quotes_total{code="",result="ok"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/quotes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebSocketRouteRequiresHub(t *testing.T) {
	r := router.New(router.Deps{
		Config: &config.Config{AllowedOrigins: []string{"http://localhost:5173"}},
		Engine: pricing.NewEngine(),
		Logger: zerolog.Nop(),
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ws/boards/bar", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"order":"Chai","board":"bar"}`)))
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}
