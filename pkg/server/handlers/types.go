package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/woragis/docs-service/pkg/docs"
)

// ErrorResponse is the JSON body returned for every error.
type ErrorResponse struct {
	// ErrorKind is the machine-readable error category
	// ("not_found", "forbidden", "unavailable").
	ErrorKind string `json:"error_kind"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// writeError maps a domain error to its HTTP status and writes the JSON
// error body. Unknown errors are treated as unavailable.
func writeError(w http.ResponseWriter, err error) {
	kind := docs.KindOf(err)
	status := http.StatusServiceUnavailable
	message := err.Error()

	var derr *docs.Error
	if errors.As(err, &derr) {
		status = derr.HTTPStatusCode()
		message = derr.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		ErrorKind: string(kind),
		Message:   message,
	})
}

// writeJSON writes v as a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
