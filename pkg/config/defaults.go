package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "0.0.0.0:8000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSEnabled          = true
	DefaultCORSMaxAge           = 3600 // 1 hour
	DefaultCORSAllowCredentials = false

	// Docs defaults
	DefaultDocsRoot           = "/app/docs"
	DefaultMarkdownExtensions = "fenced_code,codehilite,tables,toc,extra"
	DefaultDocsWatch          = true
	DefaultRescanSchedule     = "@every 1m"

	// Health defaults
	DefaultHealthCacheTTL = 5 * time.Second

	// Telemetry defaults
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "json"
	DefaultMetricsEnabled     = true
	DefaultMetricsNamespace   = "docs"
	DefaultMetricsSubsystem   = "service"
	DefaultMetricsPath        = "/metrics"
	DefaultTracingServiceName = "docs-service"
	DefaultTracingSampleRatio = 1.0
)

// DefaultConfig returns a fully populated configuration with default
// values. Loading overlays the YAML file and environment on top of this,
// so boolean fields that default to true stay true unless explicitly
// disabled.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddress:   DefaultListenAddress,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxHeaderBytes:  DefaultMaxHeaderBytes,
			CORS: CORSConfig{
				Enabled:          DefaultCORSEnabled,
				AllowedOrigins:   []string{"*"},
				AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
				AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
				ExposedHeaders:   []string{"X-Request-ID"},
				MaxAge:           DefaultCORSMaxAge,
				AllowCredentials: DefaultCORSAllowCredentials,
			},
		},
		Docs: DocsConfig{
			Root:               DefaultDocsRoot,
			MarkdownExtensions: SplitExtensions(DefaultMarkdownExtensions),
			Watch:              DefaultDocsWatch,
			RescanSchedule:     DefaultRescanSchedule,
		},
		Health: HealthConfig{
			CacheTTL: DefaultHealthCacheTTL,
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:  DefaultLogLevel,
				Format: DefaultLogFormat,
			},
			Metrics: MetricsConfig{
				Enabled:   DefaultMetricsEnabled,
				Namespace: DefaultMetricsNamespace,
				Subsystem: DefaultMetricsSubsystem,
				Path:      DefaultMetricsPath,
			},
			Tracing: TracingConfig{
				Enabled:     false,
				ServiceName: DefaultTracingServiceName,
				SampleRatio: DefaultTracingSampleRatio,
			},
		},
	}
}

// ApplyDefaults fills zero-valued fields of cfg with defaults. It is used
// for programmatically constructed configurations; file loading starts
// from DefaultConfig instead.
func ApplyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = def.Server.ListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = def.Server.IdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = def.Server.MaxHeaderBytes
	}
	if len(cfg.Server.CORS.AllowedOrigins) == 0 {
		cfg.Server.CORS.AllowedOrigins = def.Server.CORS.AllowedOrigins
	}
	if len(cfg.Server.CORS.AllowedMethods) == 0 {
		cfg.Server.CORS.AllowedMethods = def.Server.CORS.AllowedMethods
	}
	if len(cfg.Server.CORS.AllowedHeaders) == 0 {
		cfg.Server.CORS.AllowedHeaders = def.Server.CORS.AllowedHeaders
	}
	if cfg.Server.CORS.MaxAge == 0 {
		cfg.Server.CORS.MaxAge = def.Server.CORS.MaxAge
	}

	if cfg.Docs.Root == "" {
		cfg.Docs.Root = def.Docs.Root
	}
	if len(cfg.Docs.MarkdownExtensions) == 0 {
		cfg.Docs.MarkdownExtensions = def.Docs.MarkdownExtensions
	}
	if cfg.Docs.RescanSchedule == "" {
		cfg.Docs.RescanSchedule = def.Docs.RescanSchedule
	}

	if cfg.Health.CacheTTL == 0 {
		cfg.Health.CacheTTL = def.Health.CacheTTL
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = def.Telemetry.Logging.Level
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = def.Telemetry.Logging.Format
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = def.Telemetry.Metrics.Namespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = def.Telemetry.Metrics.Subsystem
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = def.Telemetry.Metrics.Path
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = def.Telemetry.Tracing.ServiceName
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 {
		cfg.Telemetry.Tracing.SampleRatio = def.Telemetry.Tracing.SampleRatio
	}
}
