// Package health implements health checking for the docs service.
//
// A Checker evaluates a fixed set of named checks (docs root existence,
// readability, markdown presence) and caches the aggregate result for a
// short TTL so frequent liveness probes stay cheap. Any failing check
// marks the service unhealthy and the HTTP handler returns 503.
package health
