package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate checks a configuration for invalid or inconsistent values.
// It returns the first problem found.
func Validate(cfg *Config) error {
	if err := validateServer(&cfg.Server); err != nil {
		return err
	}
	if err := validateDocs(&cfg.Docs); err != nil {
		return err
	}
	if err := validateHealth(&cfg.Health); err != nil {
		return err
	}
	return validateTelemetry(&cfg.Telemetry)
}

func validateServer(cfg *ServerConfig) error {
	if cfg.ListenAddress == "" {
		return fmt.Errorf("server.listen_address must not be empty")
	}
	if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		return fmt.Errorf("server.listen_address %q is not host:port: %w", cfg.ListenAddress, err)
	}
	if cfg.ReadTimeout < 0 || cfg.WriteTimeout < 0 || cfg.IdleTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return fmt.Errorf("server.max_header_bytes must be positive")
	}
	if cfg.CORS.Enabled && len(cfg.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("server.cors.allowed_origins must not be empty when CORS is enabled")
	}
	return nil
}

func validateDocs(cfg *DocsConfig) error {
	if cfg.Root == "" {
		return fmt.Errorf("docs.root must not be empty")
	}
	// The root is allowed to be missing at startup (the health check
	// reports it); only the schedule syntax is validated here.
	if cfg.RescanSchedule != "" {
		if _, err := cron.ParseStandard(cfg.RescanSchedule); err != nil {
			return fmt.Errorf("docs.rescan_schedule %q is not a valid cron expression: %w", cfg.RescanSchedule, err)
		}
	}
	return nil
}

func validateHealth(cfg *HealthConfig) error {
	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("health.cache_ttl must be positive")
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("telemetry.logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("telemetry.logging.format %q is not one of json, text, console", cfg.Logging.Format)
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("telemetry.metrics.path %q must start with /", cfg.Metrics.Path)
	}

	if cfg.Tracing.Enabled {
		if cfg.Tracing.Endpoint == "" {
			return fmt.Errorf("telemetry.tracing.endpoint must be set when tracing is enabled")
		}
		if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
			return fmt.Errorf("telemetry.tracing.sample_ratio must be between 0.0 and 1.0")
		}
	}

	return nil
}
