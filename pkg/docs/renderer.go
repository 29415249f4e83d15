package docs

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Recognized markdown extension names. Unknown names are ignored (and
// logged once at construction) rather than rejected, so a stale
// MARKDOWN_EXTENSIONS value cannot take the service down.
const (
	// ExtFencedCode enables triple-backtick code blocks. Fenced code is
	// part of the CommonMark core goldmark always parses, so the name is
	// accepted for configuration compatibility without mapping to an
	// extender.
	ExtFencedCode = "fenced_code"

	// ExtCodeHilite enables syntax highlighting of fenced code blocks,
	// keyed by the declared language.
	ExtCodeHilite = "codehilite"

	// ExtTables enables pipe-table syntax.
	ExtTables = "tables"

	// ExtTOC enables stable anchor IDs on headings.
	ExtTOC = "toc"

	// ExtExtra enables footnotes and definition lists.
	ExtExtra = "extra"
)

// Renderer converts markdown text to HTML. The goldmark engine is built
// once from the configured extension set; rendering is a pure function of
// the input text, so a single Renderer is safe for concurrent use.
//
// Raw HTML embedded in documents passes through unescaped: the docs tree
// is author-controlled, so no sanitization boundary is applied here.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a renderer for the given extension names. Unknown
// names are skipped; logger (nil for slog.Default) receives a single
// warning listing them.
func NewRenderer(extensions []string, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		extenders  []goldmark.Extender
		parserOpts = []parser.Option{}
		unknown    []string
		seen       = map[string]struct{}{}
	)

	for _, name := range extensions {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		switch key {
		case ExtFencedCode:
			// CommonMark core, nothing to add.
		case ExtCodeHilite:
			extenders = append(extenders, highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(false),
					chromahtml.TabWidth(4),
				),
			))
		case ExtTables:
			extenders = append(extenders, extension.Table)
		case ExtTOC:
			parserOpts = append(parserOpts, parser.WithAutoHeadingID())
		case ExtExtra:
			extenders = append(extenders, extension.Footnote, extension.DefinitionList)
		default:
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		logger.Warn("ignoring unknown markdown extensions", "names", strings.Join(unknown, ","))
	}

	opts := []goldmark.Option{
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
	if len(parserOpts) > 0 {
		opts = append(opts, goldmark.WithParserOptions(parserOpts...))
	}
	if len(extenders) > 0 {
		opts = append(opts, goldmark.WithExtensions(extenders...))
	}

	return &Renderer{md: goldmark.New(opts...)}
}

// Render converts markdown source to an HTML fragment.
func (r *Renderer) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
