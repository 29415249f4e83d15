package docs

import "time"

// DocumentRef describes one markdown file under the docs root. Refs are
// constructed per request from a filesystem listing and never persisted.
type DocumentRef struct {
	// Path is the slash-separated path relative to the docs root, with no
	// leading slash and no ".." segments.
	Path string `json:"path"`

	// Title is the first level-1 heading of the document, or a title-cased
	// form of the filename when no heading exists. See deriveTitle.
	Title string `json:"title"`

	// Category is the first path segment relative to the root. Empty for
	// files that live directly at the root.
	Category string `json:"category,omitempty"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Modified is the file's last modification time.
	Modified time.Time `json:"modified"`
}

// Document is a fully loaded documentation file. Instances are built per
// request and discarded after the response is written.
type Document struct {
	Ref DocumentRef

	// Content is the raw markdown exactly as stored on disk, decoded as
	// UTF-8. Frontmatter, if any, is included.
	Content string

	// HTML is the rendered form of the markdown body (frontmatter
	// stripped before rendering).
	HTML string

	// Metadata holds frontmatter key/value pairs. Nil when the document
	// has no frontmatter.
	Metadata map[string]any
}
