package config

import "time"

// Config is the root configuration structure for the docs service.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and CORS settings.
	Server ServerConfig `yaml:"server"`

	// Docs contains configuration for the documentation tree: root
	// directory, markdown extensions, and change watching.
	Docs DocsConfig `yaml:"docs"`

	// Health contains health check configuration.
	Health HealthConfig `yaml:"health"`

	// Telemetry contains observability configuration: logging, metrics,
	// and distributed tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port". Default: "0.0.0.0:8000".
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30s.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response
	// writes. It also bounds per-request handler time. Default: 30s.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// kept-alive connection. Default: 120s.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 30s.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size. Default: 1MB.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS configures Cross-Origin Resource Sharing.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS settings consumed by the HTTP boundary.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted. Default: true.
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins lists allowed origins; ["*"] allows all.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods lists allowed HTTP methods.
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders lists allowed request headers.
	AllowedHeaders []string `yaml:"allowed_headers"`

	// ExposedHeaders lists headers exposed to clients.
	ExposedHeaders []string `yaml:"exposed_headers"`

	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int `yaml:"max_age"`

	// AllowCredentials controls the Access-Control-Allow-Credentials
	// header.
	AllowCredentials bool `yaml:"allow_credentials"`
}

// DocsConfig contains configuration for the documentation tree.
type DocsConfig struct {
	// Root is the directory holding the markdown tree. Default:
	// "/app/docs".
	Root string `yaml:"root"`

	// MarkdownExtensions names the renderer extensions to enable. See
	// the docs package for recognized names; unknown names are ignored.
	MarkdownExtensions []string `yaml:"markdown_extensions"`

	// Watch enables the fsnotify watcher over the docs root. Default:
	// true.
	Watch bool `yaml:"watch"`

	// RescanSchedule is the cron expression for periodic full rescans of
	// the docs tree. Default: "@every 1m". Empty disables the schedule.
	RescanSchedule string `yaml:"rescan_schedule"`
}

// HealthConfig contains health check configuration.
type HealthConfig struct {
	// CacheTTL is how long a computed health result is served before
	// checks run again. Default: 5s.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Default: "info".
	Level string `yaml:"level"`

	// Format is the output format: json, text, console. Default: "json".
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix. Default: "docs".
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem. Default: "service".
	Subsystem string `yaml:"subsystem"`

	// Path is where the exposition endpoint is mounted. Default:
	// "/metrics".
	Path string `yaml:"path"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled controls whether spans are exported. Default: false.
	Enabled bool `yaml:"enabled"`

	// ServiceName identifies this service in traces. Default:
	// "docs-service".
	ServiceName string `yaml:"service_name"`

	// Endpoint is the OTLP gRPC collector endpoint, host:port.
	Endpoint string `yaml:"endpoint"`

	// SampleRatio is the fraction of requests to sample, 0.0-1.0.
	// Default: 1.0.
	SampleRatio float64 `yaml:"sample_ratio"`

	// Insecure disables TLS on the exporter connection.
	Insecure bool `yaml:"insecure"`
}
