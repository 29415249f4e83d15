// Package config provides configuration loading, validation, and access
// for the docs service.
//
// Configuration is loaded from a YAML file, merged with defaults, and then
// overridden by environment variables. Components never read the
// environment directly; the populated Config is passed in at construction.
//
// Loading sequence:
//
//  1. Start from defaults (DefaultConfig)
//  2. Overlay the YAML file, if present
//  3. Apply environment variable overrides
//  4. Validate the final configuration
//
// Environment overrides use the deployment-facing names DOCS_ROOT,
// MARKDOWN_EXTENSIONS, CORS_ENABLED, and CORS_ALLOWED_ORIGINS, plus
// DOCSVC_SECTION_FIELD for everything else (for example
// DOCSVC_SERVER_LISTEN_ADDRESS).
package config
