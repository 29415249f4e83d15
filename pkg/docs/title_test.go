package docs

import "testing"

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name   string
		source string
		path   string
		want   string
	}{
		{"first heading wins", "# Overview\n\nText\n", "architecture/overview.md", "Overview"},
		{"heading later in file", "intro\n\n# Real Title\n", "doc.md", "Real Title"},
		{"heading trimmed", "#   Spaced Out  \n", "doc.md", "Spaced Out"},
		{"h2 does not count", "## Secondary\n", "getting-started.md", "Getting Started"},
		{"no heading dashes", "plain text\n", "guides/getting-started.md", "Getting Started"},
		{"no heading underscores", "plain\n", "api_reference.md", "Api Reference"},
		{"markdown extension stripped", "plain\n", "notes.markdown", "Notes"},
		{"empty file", "", "adr/001-record.md", "001 Record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveTitle([]byte(tt.source), tt.path)
			if got != tt.want {
				t.Errorf("deriveTitle(%q, %q) = %q, want %q", tt.source, tt.path, got, tt.want)
			}
		})
	}
}
