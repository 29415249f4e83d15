// Package metrics provides Prometheus metrics for the docs service.
//
// All metrics live on a private registry so tests can construct isolated
// collectors, and the /metrics endpoint serves only what this service
// registers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/woragis/docs-service/pkg/config"
)

// Collector owns the Prometheus registry and all metric families for the
// docs service. A disabled collector (config.Enabled=false) accepts all
// recording calls as no-ops.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	httpMetrics *HTTPMetrics
	docsMetrics *DocsMetrics
}

// NewCollector creates a metrics collector with the specified
// configuration and registry. If registry is nil a new one is used.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.httpMetrics = NewHTTPMetrics(cfg, registry)
	c.docsMetrics = NewDocsMetrics(cfg, registry)

	return c
}

// HTTP returns the HTTP request metrics.
func (c *Collector) HTTP() *HTTPMetrics {
	return c.httpMetrics
}

// Docs returns the documentation domain metrics.
func (c *Collector) Docs() *DocsMetrics {
	return c.docsMetrics
}

// Enabled reports whether metric recording is enabled.
func (c *Collector) Enabled() bool {
	return c.config.Enabled
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
