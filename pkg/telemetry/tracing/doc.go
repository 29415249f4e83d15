// Package tracing provides OpenTelemetry distributed tracing for the docs
// service.
//
// Spans are exported over OTLP gRPC with parent-based ratio sampling and
// W3C Trace Context propagation. When tracing is disabled in the
// configuration, a noop tracer is used and span creation costs nothing
// measurable.
package tracing
