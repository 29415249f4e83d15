package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/woragis/docs-service/pkg/telemetry/metrics"
)

// Metrics records request counts and latency histograms per route. The
// route label uses the mux pattern that matched (e.g. "/api/v1/docs/{path...}")
// rather than the raw URL path, keeping label cardinality bounded.
//
// Example usage:
//
//	handler = Metrics(collector.HTTP())(handler)
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			// The pattern includes the method ("GET /healthz"); the method
			// is already its own label.
			if _, rest, ok := strings.Cut(route, " "); ok {
				route = rest
			}
			m.RecordRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
