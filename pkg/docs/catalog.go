package docs

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog enumerates markdown files under the docs root. Listings are
// computed per call; nothing is cached, so results always reflect the
// current filesystem state.
type Catalog struct {
	root   string
	logger *slog.Logger
}

// NewCatalog creates a catalog over the given docs root.
func NewCatalog(root string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{root: root, logger: logger}
}

// List returns refs for every markdown file under the root, ordered
// lexicographically by relative path. When category is non-empty only
// files whose first path segment equals it (exact, case-sensitive) are
// included; files directly at the root carry no category and are excluded
// by any filter.
//
// Hidden files and directories (dot-prefixed) are skipped. List fails with
// Unavailable when the root does not exist or cannot be read.
func (c *Catalog) List(ctx context.Context, category string) ([]DocumentRef, error) {
	info, err := os.Stat(c.root)
	if err != nil || !info.IsDir() {
		return nil, NewUnavailable("docs root not found", err)
	}

	refs := []DocumentRef{}
	err = filepath.WalkDir(c.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Errors on the root abort the walk; deeper ones skip the entry.
			if p == c.root {
				return walkErr
			}
			c.logger.Warn("skipping unreadable entry", "path", p, "error", walkErr)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if strings.HasPrefix(d.Name(), ".") && p != c.root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdown(p) {
			return nil
		}

		rel, relErr := filepath.Rel(c.root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		cat := ""
		if i := strings.Index(rel, "/"); i >= 0 {
			cat = rel[:i]
		}
		if category != "" && cat != category {
			return nil
		}

		fi, infoErr := d.Info()
		if infoErr != nil {
			c.logger.Warn("skipping file without metadata", "path", rel, "error", infoErr)
			return nil
		}

		refs = append(refs, DocumentRef{
			Path:     rel,
			Title:    c.titleFor(p, rel),
			Category: cat,
			Size:     fi.Size(),
			Modified: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, NewUnavailable("docs root not readable", err)
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs, nil
}

// Count returns the number of markdown files under the root. It is used
// by the health checker and the file-count gauge.
func (c *Catalog) Count() (int, error) {
	count := 0
	err := filepath.WalkDir(c.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == c.root {
				return walkErr
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != c.root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && isMarkdown(p) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, NewUnavailable("docs root not readable", err)
	}
	return count, nil
}

// titleFor reads the file to honor the first-heading title rule, falling
// back to the filename when the read fails.
func (c *Catalog) titleFor(absPath, rel string) string {
	source, err := os.ReadFile(absPath)
	if err != nil {
		c.logger.Warn("failed to read doc for title", "path", rel, "error", err)
		return filenameTitle(rel)
	}
	return deriveTitle(source, rel)
}
