package docs

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
)

// Service composes the resolver, a file read, and the renderer into the
// "fetch one document" operation. Every fetch is stateless; failures from
// the resolver propagate verbatim.
type Service struct {
	resolver *Resolver
	renderer *Renderer
	logger   *slog.Logger
}

// NewService creates a fetch service over the given docs root.
func NewService(root string, renderer *Renderer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		resolver: NewResolver(root),
		renderer: renderer,
		logger:   logger,
	}
}

// Resolver exposes the service's path resolver.
func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// Fetch resolves requested, reads the file, extracts frontmatter metadata,
// and renders the markdown body to HTML. Content always holds the exact
// on-disk bytes; HTML is rendered from the body with frontmatter stripped.
//
// Fails with NotFound/Forbidden from resolution, and with Unavailable when
// the file cannot be read or is not valid UTF-8 text.
func (s *Service) Fetch(ctx context.Context, requested string) (*Document, error) {
	abs, rel, err := s.resolver.Resolve(requested)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, NewUnavailable("failed to read documentation file", err)
	}
	if !utf8.Valid(raw) {
		return nil, NewUnavailable("documentation file is not valid UTF-8 text", nil)
	}

	metadata, body := splitFrontmatter(raw)

	html, err := s.renderer.Render(body)
	if err != nil {
		return nil, NewUnavailable("failed to render markdown", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, NewUnavailable("failed to stat documentation file", err)
	}

	cat := ""
	if i := strings.Index(rel, "/"); i >= 0 {
		cat = rel[:i]
	}

	doc := &Document{
		Ref: DocumentRef{
			Path:     rel,
			Title:    deriveTitle(body, rel),
			Category: cat,
			Size:     info.Size(),
			Modified: info.ModTime(),
		},
		Content:  string(raw),
		HTML:     html,
		Metadata: metadata,
	}

	s.logger.DebugContext(ctx, "served doc", "path", rel, "size", info.Size())
	return doc, nil
}

// splitFrontmatter separates YAML frontmatter from the markdown body.
// Documents without frontmatter (or with malformed frontmatter) render in
// full and carry nil metadata.
func splitFrontmatter(raw []byte) (map[string]any, []byte) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil || len(meta) == 0 {
		return nil, raw
	}
	return meta, body
}
