package handlers

import (
	"net/http"
)

// ServiceInfo describes the service for the root endpoint.
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// InfoHandler serves GET / with service identification and a map of the
// available endpoints.
func InfoHandler(version string) http.HandlerFunc {
	info := ServiceInfo{
		Service: "docs-service",
		Version: version,
		Endpoints: map[string]string{
			"list":    "/api/v1/docs/",
			"fetch":   "/api/v1/docs/{path}",
			"health":  "/healthz",
			"metrics": "/metrics",
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}
