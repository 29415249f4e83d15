package docs

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolver maps user-supplied relative paths to validated absolute
// locations under the docs root. It is stateless; a single instance can be
// shared across requests.
type Resolver struct {
	root string
}

// NewResolver creates a resolver for the given docs root directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve validates requested against the docs root and returns the
// canonical absolute path of the markdown file plus its slash-separated
// path relative to the root.
//
// It fails with Forbidden when the path is absolute or normalizes to a
// location outside the root (including escapes through symlinks), with
// NotFound when no markdown file exists at the path, and with Unavailable
// when the root itself cannot be resolved.
//
// Lookup order follows the serving conventions of the docs tree: the exact
// path, the path with ".md" appended when no markdown extension was given,
// and README.md then index.md when the path names a directory.
func (r *Resolver) Resolve(requested string) (abs string, rel string, err error) {
	if filepath.IsAbs(requested) || path.IsAbs(requested) {
		return "", "", NewForbidden(requested)
	}

	trimmed := strings.Trim(requested, "/")
	if trimmed == "" {
		return "", "", NewNotFound(requested)
	}

	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", "", NewForbidden(requested)
	}

	canonRoot, err := filepath.EvalSymlinks(r.root)
	if err != nil {
		return "", "", NewUnavailable("docs root not accessible", err)
	}

	candidate, err := r.findFile(filepath.Join(r.root, filepath.FromSlash(cleaned)), requested)
	if err != nil {
		return "", "", err
	}

	// Containment check on the canonical form guards against symlinks
	// inside the tree pointing outside of it.
	canon, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", "", NewNotFound(requested)
	}
	if canon != canonRoot && !strings.HasPrefix(canon, canonRoot+string(filepath.Separator)) {
		return "", "", NewForbidden(requested)
	}

	relPath, err := filepath.Rel(canonRoot, canon)
	if err != nil {
		return "", "", NewForbidden(requested)
	}

	return canon, filepath.ToSlash(relPath), nil
}

// findFile locates the markdown file for an already-normalized absolute
// path, applying the extension and directory-index fallbacks.
func (r *Resolver) findFile(absPath, requested string) (string, error) {
	info, err := os.Stat(absPath)
	if err == nil {
		if info.Mode().IsRegular() && isMarkdown(absPath) {
			return absPath, nil
		}
		if info.IsDir() {
			for _, index := range []string{"README.md", "index.md"} {
				p := filepath.Join(absPath, index)
				if fi, statErr := os.Stat(p); statErr == nil && fi.Mode().IsRegular() {
					return p, nil
				}
			}
		}
		return "", NewNotFound(requested)
	}

	if !isMarkdown(absPath) {
		p := absPath + ".md"
		if fi, statErr := os.Stat(p); statErr == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}

	return "", NewNotFound(requested)
}

// isMarkdown reports whether the path carries a recognized markdown
// file extension.
func isMarkdown(p string) bool {
	switch filepath.Ext(p) {
	case ".md", ".markdown":
		return true
	}
	return false
}
