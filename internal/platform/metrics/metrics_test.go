package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter(c *Collector) *chi.Mux {
	router := chi.NewRouter()
	router.Use(c.Middleware())
	router.Get("/api/bodies/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "vulcan" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, "ok")
	})
	router.Handle("/metrics", c.Handler())
	return router
}

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	c := NewCollector()
	router := newTestRouter(c)

	for _, path := range []string{"/api/bodies/earth", "/api/bodies/mars", "/api/bodies/vulcan", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(c.requests.WithLabelValues("GET", "/api/bodies/{name}", "200")); got != 2 {
		t.Fatalf("expected 2 ok requests, got %v", got)
	}
	if got := testutil.ToFloat64(c.requests.WithLabelValues("GET", "/api/bodies/{name}", "404")); got != 1 {
		t.Fatalf("expected 1 matched 404, got %v", got)
	}
	if got := testutil.ToFloat64(c.requests.WithLabelValues("GET", UnmatchedRoute, "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
	if got := testutil.ToFloat64(c.inFlight); got != 0 {
		t.Fatalf("expected no requests in flight, got %v", got)
	}
}

func TestMiddlewareLabelsMethodMismatchUnmatched(t *testing.T) {
	c := NewCollector()
	router := newTestRouter(c)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/bodies/earth", nil))
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}

	if got := testutil.ToFloat64(c.requests.WithLabelValues("POST", UnmatchedRoute, "405")); got != 1 {
		t.Fatalf("expected 1 unmatched 405, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	router := newTestRouter(c)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bodies/earth", nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		`http_requests_total{method="GET",route="/api/bodies/{name}",status="200"} 1`,
		"http_request_duration_seconds_bucket",
		"http_requests_in_flight",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected exposition to contain %q", want)
		}
	}
}

func TestCollectorsUseSeparateRegistries(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	if a.Registry() == b.Registry() {
		t.Fatal("expected distinct registries")
	}
}
