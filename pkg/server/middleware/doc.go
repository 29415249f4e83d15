// Package middleware provides HTTP middleware for the docs service.
//
// Available middleware:
//
//   - RequestID: unique X-Request-ID generation and propagation
//   - Logging: structured request/response logging with latency
//   - Recovery: panic recovery with a JSON 500 response
//   - CORS: cross-origin resource sharing headers and preflight
//   - Timeout: per-request deadline enforcement with a JSON 504
//   - Metrics: Prometheus request counters and latency histograms
//
// Middleware compose outermost to innermost. Metrics must directly wrap
// the mux so the matched route pattern is visible on the request after
// dispatch.
package middleware
