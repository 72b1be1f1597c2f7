package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	apihttp "github.com/artpar/storeadmin/adapters/http"
	"github.com/artpar/storeadmin/adapters/metrics"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{})

	rec := get(t, router, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body apihttp.HealthResponse
	json.NewDecoder(rec.Body).Decode(&body)
	if body.Status != "ok" {
		t.Errorf("status = %q", body.Status)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name   string
		store  apihttp.HealthChecker
		status int
	}{
		{"nil store", nil, http.StatusOK},
		{"healthy", pingFunc(func(context.Context) error { return nil }), http.StatusOK},
		{"unhealthy", pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := apihttp.NewRouter(apihttp.NewHealthHandler(tt.store), zerolog.Nop(), apihttp.RouterConfig{})
			rec := get(t, router, "/readyz")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{Version: "1.2.3"})

	var body apihttp.VersionResponse
	json.NewDecoder(get(t, router, "/version").Body).Decode(&body)
	if body.Version != "1.2.3" || body.Service != "storeadmin" {
		t.Errorf("unexpected version body: %+v", body)
	}
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{})

	rec := get(t, router, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var body apihttp.ErrorResponseBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body.Error.Code != "not_found" {
		t.Errorf("unexpected body: %+v %v", body, err)
	}
}

func TestRouter_AdminMounted(t *testing.T) {
	admin := chi.NewRouter()
	admin.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("product " + chi.URLParam(r, "id")))
	})

	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{AdminHandler: admin})

	rec := get(t, router, "/admin/products/42")
	if rec.Code != http.StatusOK || rec.Body.String() != "product 42" {
		t.Errorf("status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_MetricsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	admin := chi.NewRouter()
	admin.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		AdminHandler:   admin,
	})

	get(t, router, "/admin/products/1")
	get(t, router, "/admin/products/2")
	get(t, router, "/healthz")

	got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/admin/products/{id}", "4xx"))
	if got != 2 {
		t.Errorf("requests for pattern = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(m.RequestsTotal); n != 1 {
		t.Errorf("series = %d, health checks should not be counted", n)
	}

	rec := get(t, router, "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Errorf("metrics endpoint: status=%d", rec.Code)
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{})

	if rec := get(t, router, "/metrics"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestOpenAPI_WellKnownEndpoint(t *testing.T) {
	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{EnableOpenAPI: true})

	rec := get(t, router, "/.well-known/openapi.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s", ct)
	}

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("document is not JSON: %v", err)
	}
	for _, p := range []string{"/admin/login", "/admin/plans", "/admin/products/{id}/quotes", "/healthz"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("path %s missing from document", p)
		}
	}
}

func TestOpenAPI_SwaggerUIEndpoint(t *testing.T) {
	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{EnableOpenAPI: true})

	rec := get(t, router, "/swagger/index.html")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestOpenAPI_Disabled(t *testing.T) {
	router := apihttp.NewRouter(apihttp.NewHealthHandler(nil), zerolog.Nop(), apihttp.RouterConfig{})

	if rec := get(t, router, "/.well-known/openapi.json"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
