package handlers

import (
	"net/http"

	"github.com/woragis/docs-service/pkg/docs"
	"github.com/woragis/docs-service/pkg/telemetry/metrics"
)

// DocsHandler serves the documentation listing and fetch endpoints.
type DocsHandler struct {
	catalog *docs.Catalog
	service *docs.Service
	metrics *metrics.DocsMetrics
}

// NewDocsHandler creates a handler backed by the given catalog and service.
// The metrics argument may be nil.
func NewDocsHandler(catalog *docs.Catalog, service *docs.Service, m *metrics.DocsMetrics) *DocsHandler {
	return &DocsHandler{
		catalog: catalog,
		service: service,
		metrics: m,
	}
}

// documentResponse is the JSON body for a single fetched document.
type documentResponse struct {
	Path     string         `json:"path"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	HTML     string         `json:"html"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// List handles GET /api/v1/docs/. The optional "category" query parameter
// restricts results to documents whose top-level directory matches.
//
// Responds with a JSON array of document references, or 503 when the docs
// root cannot be scanned.
func (h *DocsHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	refs, err := h.catalog.List(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordCatalogScan()
	}

	writeJSON(w, http.StatusOK, refs)
}

// Get handles GET /api/v1/docs/{path...}. The optional "format" query
// parameter selects the representation: "json" (default) returns the
// document with rendered HTML embedded, "html" returns a standalone HTML
// page.
//
// Error responses use the standard error body with status 404 (not found),
// 403 (forbidden path), or 503 (docs root unavailable).
func (h *DocsHandler) Get(w http.ResponseWriter, r *http.Request) {
	requested := r.PathValue("path")

	doc, err := h.service.Fetch(r.Context(), requested)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordFetch(string(docs.KindOf(err)))
		}
		writeError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordFetch("ok")
	}

	if r.URL.Query().Get("format") == "html" {
		page, err := docs.RenderPage(doc.Ref.Title, doc.HTML)
		if err != nil {
			writeError(w, docs.NewUnavailable("failed to render page", err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(page))
		return
	}

	writeJSON(w, http.StatusOK, documentResponse{
		Path:     doc.Ref.Path,
		Title:    doc.Ref.Title,
		Content:  doc.Content,
		HTML:     doc.HTML,
		Metadata: doc.Metadata,
	})
}
