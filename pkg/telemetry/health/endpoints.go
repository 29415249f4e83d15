package health

import (
	"encoding/json"
	"net/http"
)

// Handler returns the HTTP handler for the health endpoint.
//
// Returns:
//   - 200 OK: all checks passed
//   - 503 Service Unavailable: at least one check failed
//
// Example response:
//
//	{
//	    "status": "healthy",
//	    "service": "docs-service",
//	    "checks": [
//	        {"name": "service", "status": "ok"},
//	        {"name": "docs_root_exists", "status": "ok"},
//	        {"name": "docs_root_readable", "status": "ok"},
//	        {"name": "markdown_files", "status": "ok", "detail": "12 files"}
//	    ],
//	    "computed_at": "2026-08-26T10:30:00Z"
//	}
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		result := c.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if result.Status == StatusHealthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(result)
		}
	}
}
