package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// UnmatchedOperation labels requests that hit no known route.
const UnmatchedOperation = "unmatched"

// HTTP Prometheus metrics, labeled by corpus operation rather than raw path.
var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds, by corpus operation",
			// corpus reads are local filesystem scans
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"operation", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests, by corpus operation",
		},
		[]string{"operation", "status"},
	)
)

var httpMetricsRegistered bool

// RegisterHTTPMetrics registers the request metrics. Must be called once from main.
func RegisterHTTPMetrics() {
	if httpMetricsRegistered {
		return
	}
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	httpMetricsRegistered = true
}

// Middleware records request duration and count.
// operations maps chi route patterns to operation labels.
func Middleware(operations map[string]string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			op := operationOf(operations, chi.RouteContext(r.Context()))
			status := strconv.Itoa(ww.status)
			httpRequestDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(op, status).Inc()
		})
	}
}

// operationOf resolves the matched route after routing has run.
func operationOf(operations map[string]string, rctx *chi.Context) string {
	if rctx == nil {
		return UnmatchedOperation
	}
	if op, ok := operations[rctx.RoutePattern()]; ok {
		return op
	}
	return UnmatchedOperation
}

// statusWriter captures the first status written.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
