// Package server provides the HTTP server for the docs service.
//
// It wires the documentation catalog and fetch service, the health
// checker, and the Prometheus collector into a routed handler with a
// middleware chain (recovery, request IDs, logging, CORS, timeouts,
// metrics), and manages the server lifecycle with graceful shutdown on
// SIGINT/SIGTERM or context cancellation.
package server
