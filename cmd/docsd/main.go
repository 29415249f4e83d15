// Docsd serves a directory of markdown documentation over HTTP.
//
// It renders markdown to HTML with syntax highlighting, lists documents by
// category, and exposes health and Prometheus metrics endpoints.
//
// Usage:
//
//	# Start server with default configuration
//	docsd run
//
//	# Start with custom configuration file
//	docsd run --config /path/to/config.yaml
//
//	# Override the docs directory
//	docsd run --docs-root ./docs
//
//	# Validate configuration without starting
//	docsd validate
//
//	# Show version information
//	docsd version
package main

func main() {
	Execute()
}
