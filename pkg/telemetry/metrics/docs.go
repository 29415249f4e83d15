package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/woragis/docs-service/pkg/config"
)

// DocsMetrics tracks documentation-domain metrics.
//
// Metrics:
//   - docs_service_fetches_total: document fetches by outcome
//   - docs_service_catalog_scans_total: catalog listings and rescans
//   - docs_service_markdown_files: current markdown file count gauge
//   - docs_service_health_cache_total: health check cache hits/misses
type DocsMetrics struct {
	enabled bool

	fetchesTotal      *prometheus.CounterVec
	catalogScansTotal prometheus.Counter
	markdownFiles     prometheus.Gauge
	healthCacheTotal  *prometheus.CounterVec
}

// NewDocsMetrics creates and registers docs metrics with the registry.
func NewDocsMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *DocsMetrics {
	m := &DocsMetrics{
		enabled: cfg.Enabled,

		fetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "fetches_total",
				Help:      "Total number of document fetches by outcome",
			},
			[]string{"outcome"},
		),

		catalogScansTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "catalog_scans_total",
				Help:      "Total number of catalog listings and watcher rescans",
			},
		),

		markdownFiles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "markdown_files",
				Help:      "Number of markdown files currently under the docs root",
			},
		),

		healthCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "health_cache_total",
				Help:      "Health check cache lookups by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(m.fetchesTotal, m.catalogScansTotal, m.markdownFiles, m.healthCacheTotal)
	return m
}

// RecordFetch records a document fetch with the given outcome
// ("ok", "not_found", "forbidden", "unavailable").
func (m *DocsMetrics) RecordFetch(outcome string) {
	if !m.enabled {
		return
	}
	m.fetchesTotal.WithLabelValues(outcome).Inc()
}

// RecordCatalogScan records one catalog listing or rescan.
func (m *DocsMetrics) RecordCatalogScan() {
	if !m.enabled {
		return
	}
	m.catalogScansTotal.Inc()
}

// SetMarkdownFiles updates the markdown file-count gauge.
func (m *DocsMetrics) SetMarkdownFiles(n int) {
	if !m.enabled {
		return
	}
	m.markdownFiles.Set(float64(n))
}

// RecordHealthCache records a health cache hit or miss.
func (m *DocsMetrics) RecordHealthCache(hit bool) {
	if !m.enabled {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.healthCacheTotal.WithLabelValues(result).Inc()
}
