// Package handlers implements the HTTP handlers for the docs service API:
// the document listing and fetch endpoints under /api/v1/docs, and the
// service info endpoint at the root. Errors are returned as JSON bodies
// with an error_kind field mapped to 404, 403, or 503.
package handlers
