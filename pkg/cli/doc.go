// Package cli provides shared helpers for the docsd command line:
// typed errors for configuration and command failures, and output
// formatters for text and JSON results.
package cli
