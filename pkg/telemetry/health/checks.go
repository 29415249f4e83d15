package health

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DocsChecks returns the standard check set for a docs root:
//
//   - service: always passes; confirms the process responds
//   - docs_root_exists: the docs root is an existing directory
//   - docs_root_readable: the docs root can be opened for reading
//   - markdown_files: at least one markdown file exists under the root
func DocsChecks(root string) []NamedCheck {
	return []NamedCheck{
		{
			Name: "service",
			Run: func(ctx context.Context) (string, error) {
				return "", nil
			},
		},
		{
			Name: "docs_root_exists",
			Run: func(ctx context.Context) (string, error) {
				info, err := os.Stat(root)
				if err != nil {
					return "", fmt.Errorf("docs root %s: %w", root, err)
				}
				if !info.IsDir() {
					return "", fmt.Errorf("docs root %s is not a directory", root)
				}
				return "", nil
			},
		},
		{
			Name: "docs_root_readable",
			Run: func(ctx context.Context) (string, error) {
				f, err := os.Open(root)
				if err != nil {
					return "", fmt.Errorf("docs root %s: %w", root, err)
				}
				_ = f.Close()
				return "", nil
			},
		},
		{
			Name: "markdown_files",
			Run: func(ctx context.Context) (string, error) {
				count, err := countMarkdownFiles(ctx, root)
				if err != nil {
					return "", err
				}
				if count == 0 {
					return "", fmt.Errorf("no markdown files under %s", root)
				}
				return fmt.Sprintf("%d files", count), nil
			},
		},
	}
}

func countMarkdownFiles(ctx context.Context, root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".md" || ext == ".markdown" {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
