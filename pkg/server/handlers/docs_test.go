package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woragis/docs-service/pkg/docs"
)

func newDocsMux(t *testing.T, files map[string]string) *http.ServeMux {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	renderer := docs.NewRenderer([]string{"fenced_code", "codehilite", "tables", "toc", "extra"}, nil)
	handler := NewDocsHandler(
		docs.NewCatalog(root, nil),
		docs.NewService(root, renderer, nil),
		nil,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/docs/{$}", handler.List)
	mux.HandleFunc("GET /api/v1/docs/{path...}", handler.Get)
	return mux
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON error body: %v (%q)", err, rec.Body.String())
	}
	return body
}

func TestListEndpoint(t *testing.T) {
	mux := newDocsMux(t, map[string]string{
		"README.md":       "# Welcome\n",
		"adr/001-foo.md":  "# Foo Decision\n",
		"guides/intro.md": "# Introduction\n",
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/docs/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}

	var refs []docs.DocumentRef
	if err := json.NewDecoder(rec.Body).Decode(&refs); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3", len(refs))
	}
	if refs[0].Path != "README.md" || refs[1].Path != "adr/001-foo.md" {
		t.Errorf("unexpected ordering: %+v", refs)
	}
}

func TestListEndpointCategoryFilter(t *testing.T) {
	mux := newDocsMux(t, map[string]string{
		"README.md":      "# Welcome\n",
		"adr/001-foo.md": "# Foo Decision\n",
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/docs/?category=adr", nil))

	var refs []docs.DocumentRef
	if err := json.NewDecoder(rec.Body).Decode(&refs); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(refs) != 1 || refs[0].Path != "adr/001-foo.md" {
		t.Errorf("filtered refs = %+v", refs)
	}
}

func TestGetEndpointJSON(t *testing.T) {
	source := "# Overview\n\nText\n"
	mux := newDocsMux(t, map[string]string{"architecture/overview.md": source})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/docs/architecture/overview.md", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Path    string `json:"path"`
		Title   string `json:"title"`
		Content string `json:"content"`
		HTML    string `json:"html"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Path != "architecture/overview.md" {
		t.Errorf("path = %q", body.Path)
	}
	if body.Title != "Overview" {
		t.Errorf("title = %q", body.Title)
	}
	if body.Content != source {
		t.Errorf("content = %q, want exact source", body.Content)
	}
	if !strings.Contains(body.HTML, "<h1") {
		t.Errorf("html = %q, want rendered heading", body.HTML)
	}
}

func TestGetEndpointHTMLFormat(t *testing.T) {
	mux := newDocsMux(t, map[string]string{"guide.md": "# Guide\n\nBody\n"})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/docs/guide.md?format=html", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	page := rec.Body.String()
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Error("response is not a standalone HTML page")
	}
	if !strings.Contains(page, "<title>Guide - Docs</title>") {
		t.Errorf("page title missing: %q", page)
	}
}

func TestGetEndpointErrors(t *testing.T) {
	mux := newDocsMux(t, map[string]string{"README.md": "# Hi\n"})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantKind   string
	}{
		{"missing file", "/api/v1/docs/missing.md", http.StatusNotFound, "not_found"},
		{"traversal", "/api/v1/docs/..%2F..%2Fetc%2Fpasswd", http.StatusForbidden, "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			body := decodeError(t, rec)
			if body.ErrorKind != tt.wantKind {
				t.Errorf("error_kind = %q, want %q", body.ErrorKind, tt.wantKind)
			}
			if body.Message == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestListEndpointUnavailable(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gone")
	handler := NewDocsHandler(
		docs.NewCatalog(root, nil),
		docs.NewService(root, docs.NewRenderer(nil, nil), nil),
		nil,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/docs/{$}", handler.List)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/docs/", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body := decodeError(t, rec); body.ErrorKind != "unavailable" {
		t.Errorf("error_kind = %q, want unavailable", body.ErrorKind)
	}
}

func TestInfoHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	InfoHandler("1.2.3")(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var info ServiceInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if info.Service != "docs-service" || info.Version != "1.2.3" {
		t.Errorf("info = %+v", info)
	}
	if info.Endpoints["list"] != "/api/v1/docs/" {
		t.Errorf("endpoints = %v", info.Endpoints)
	}
}
