package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arimendoza/coffeehaus-backend/pkg/config"
	"github.com/arimendoza/coffeehaus-backend/pkg/metrics"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	registry := prometheus.NewRegistry()
	return NewRouter(RouterParams{
		Config: &config.Config{
			App: config.AppConfig{Env: "test", Port: "8080"},
			JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 15},
		},
		HTTPMetrics:     metrics.NewHTTPMetrics(registry),
		MetricsGatherer: registry,
	})
}

func TestRouterHealthLive(t *testing.T) {
	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterPublicPing(t *testing.T) {
	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterCartRequiresAuth(t *testing.T) {
	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestRouterExposesMetrics(t *testing.T) {
	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}
