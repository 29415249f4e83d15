// Package docs implements the documentation-serving core: path resolution
// against a configured root, markdown-to-HTML rendering, catalog listing,
// and document fetching.
//
// The package is a pure request-transform pipeline. Nothing here caches
// document content or mutates shared state; every operation is a function
// of the current filesystem tree under the docs root.
//
// Components:
//
//   - Resolver: maps user-supplied relative paths to validated absolute
//     paths, rejecting anything that escapes the root (including through
//     symlinks).
//   - Renderer: converts markdown to HTML with a configurable extension
//     set (tables, syntax highlighting, footnotes, heading anchors).
//   - Catalog: enumerates markdown files with optional category filtering.
//   - Service: composes Resolver + file read + Renderer into a single
//     "fetch one document" operation.
//   - Watcher: observes the docs root for changes (fsnotify plus a
//     scheduled rescan) so telemetry stays current.
//
// Failures are classified into three kinds (NotFound, Forbidden,
// Unavailable); see errors.go. The HTTP boundary maps these to status
// codes deterministically.
package docs
