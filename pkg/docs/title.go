package docs

import (
	"bufio"
	"bytes"
	"path"
	"strings"
	"unicode"
)

// deriveTitle applies the documented title rule: the first level-1 heading
// ("# Title") in the markdown source wins; otherwise the final path
// segment is used with the extension stripped, separators replaced by
// spaces, and each word title-cased.
func deriveTitle(source []byte, relPath string) string {
	if title, ok := extractHeading(source); ok {
		return title
	}
	return filenameTitle(relPath)
}

// extractHeading returns the text of the first level-1 heading, if any.
func extractHeading(source []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(source))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), true
		}
	}
	return "", false
}

// filenameTitle derives a display title from the last path segment:
// "getting-started.md" becomes "Getting Started".
func filenameTitle(relPath string) string {
	base := path.Base(relPath)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
