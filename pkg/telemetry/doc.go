// Package telemetry provides observability for the docs service.
//
// # Components
//
//   - logging: structured logging built on log/slog
//   - metrics: Prometheus metrics collection and exposition
//   - tracing: OpenTelemetry distributed tracing
//   - health: TTL-cached health checks and the /healthz endpoint
//
// Each component is configured from the telemetry section of the service
// configuration and constructed at startup; handlers and middleware
// receive them by reference.
package telemetry
