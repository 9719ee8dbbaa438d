package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var testOperations = map[string]string{
	"/examples/{example}":         "render",
	"/search":                     "search",
	"/resources/{example}/{kind}": "read_resource",
	"/health":                     "health",
}

func TestMetricsMiddleware_LabelsByOperation(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware(testOperations))
	r.Get("/examples/{example}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("# basic"))
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("render", "200"))
	for _, name := range []string{"basic", "csv-parse"} {
		req := httptest.NewRequest(http.MethodGet, "/examples/"+name, http.NoBody)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}
	}

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("render", "200")) - before; got != 2 {
		t.Errorf("render requests = %v, want 2 under one series", got)
	}
	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
}

func TestMetricsMiddleware_DifferentStatusCodes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware(testOperations))

	r.Get("/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/resources/{example}/{kind}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		// a second WriteHeader must not change the recorded status
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		target    string
		operation string
		status    string
	}{
		{"/search", "search", "200"},
		{"/resources/basic/binary", "read_resource", "404"},
		{"/health", "health", "503"},
		{"/no/such/route", UnmatchedOperation, "404"},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(tc.operation, tc.status))
			req := httptest.NewRequest(http.MethodGet, tc.target, http.NoBody)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(tc.operation, tc.status)) - before; got != 1 {
				t.Errorf("requests_total{operation=%q,status=%q} grew by %v, want 1", tc.operation, tc.status, got)
			}
		})
	}
}

func TestOperationOf(t *testing.T) {
	rctx := chi.NewRouteContext()
	if got := operationOf(testOperations, nil); got != UnmatchedOperation {
		t.Errorf("nil route context = %q", got)
	}
	if got := operationOf(testOperations, rctx); got != UnmatchedOperation {
		t.Errorf("empty pattern = %q", got)
	}
	rctx.RoutePatterns = []string{"/search"}
	if got := operationOf(testOperations, rctx); got != "search" {
		t.Errorf("search pattern = %q", got)
	}
}

func TestRegisterHTTPMetrics_Idempotent(t *testing.T) {
	RegisterHTTPMetrics()
	RegisterHTTPMetrics()
}

func TestMetricsHandler_ViaPromhttp(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(MetadataWarningsTotal)
	MetadataWarningsTotal.WithLabelValues("parse").Inc()

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	body, err := io.ReadAll(rr.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if !strings.Contains(string(body), `scriptdex_metadata_warnings_total{reason="parse"}`) {
		t.Errorf("expected metadata warnings series in:\n%s", body)
	}
}
