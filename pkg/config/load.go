package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SplitExtensions parses a comma-separated extension list into names,
// trimming whitespace and dropping empty entries.
func SplitExtensions(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// LoadConfig loads configuration from a YAML file at the specified path.
// Values start from defaults; the file only overrides what it sets. A
// missing file is not an error (the service can run on defaults plus
// environment), but an unreadable or malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables always
// take precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides. The
// deployment-facing variables keep their historical names (DOCS_ROOT,
// MARKDOWN_EXTENSIONS, CORS_ENABLED, CORS_ALLOWED_ORIGINS); everything
// else follows DOCSVC_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Docs overrides
	if val := os.Getenv("DOCS_ROOT"); val != "" {
		cfg.Docs.Root = val
	}
	if val := os.Getenv("MARKDOWN_EXTENSIONS"); val != "" {
		cfg.Docs.MarkdownExtensions = SplitExtensions(val)
	}
	if val := os.Getenv("DOCSVC_DOCS_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Docs.Watch = b
		}
	}
	if val := os.Getenv("DOCSVC_DOCS_RESCAN_SCHEDULE"); val != "" {
		cfg.Docs.RescanSchedule = val
	}

	// CORS overrides
	if val := os.Getenv("CORS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Server.CORS.Enabled = b
		}
	}
	if val := os.Getenv("CORS_ALLOWED_ORIGINS"); val != "" {
		if val == "*" {
			cfg.Server.CORS.AllowedOrigins = []string{"*"}
		} else {
			cfg.Server.CORS.AllowedOrigins = SplitExtensions(val)
		}
	}

	// Server overrides
	if val := os.Getenv("DOCSVC_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("DOCSVC_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("DOCSVC_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("DOCSVC_SERVER_IDLE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.IdleTimeout = d
		}
	}
	if val := os.Getenv("DOCSVC_SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}
	if val := os.Getenv("DOCSVC_SERVER_MAX_HEADER_BYTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Server.MaxHeaderBytes = i
		}
	}

	// Health overrides
	if val := os.Getenv("DOCSVC_HEALTH_CACHE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Health.CacheTTL = d
		}
	}

	// Telemetry overrides
	if val := os.Getenv("DOCSVC_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("DOCSVC_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("DOCSVC_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("DOCSVC_TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
	if val := os.Getenv("DOCSVC_TELEMETRY_TRACING_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Tracing.Enabled = b
		}
	}
	if val := os.Getenv("DOCSVC_TELEMETRY_TRACING_ENDPOINT"); val != "" {
		cfg.Telemetry.Tracing.Endpoint = val
	}
	if val := os.Getenv("DOCSVC_TELEMETRY_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Telemetry.Tracing.SampleRatio = f
		}
	}
}
