package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func okCheck(name string) NamedCheck {
	return NamedCheck{
		Name: name,
		Run:  func(ctx context.Context) (string, error) { return "", nil },
	}
}

func failCheck(name, msg string) NamedCheck {
	return NamedCheck{
		Name: name,
		Run:  func(ctx context.Context) (string, error) { return "", errors.New(msg) },
	}
}

func TestCheckerAllHealthy(t *testing.T) {
	c := New("docs-service", time.Second, okCheck("a"), okCheck("b"))

	result := c.Check(context.Background())

	if result.Status != StatusHealthy {
		t.Errorf("Status = %s, want %s", result.Status, StatusHealthy)
	}
	if result.Service != "docs-service" {
		t.Errorf("Service = %q", result.Service)
	}
	if len(result.Checks) != 2 {
		t.Fatalf("got %d checks, want 2", len(result.Checks))
	}
	for _, check := range result.Checks {
		if check.Status != "ok" {
			t.Errorf("check %s status = %q, want ok", check.Name, check.Status)
		}
	}
	if result.ComputedAt.IsZero() {
		t.Error("ComputedAt not set")
	}
}

func TestCheckerFailureIsUnhealthy(t *testing.T) {
	c := New("docs-service", time.Second,
		okCheck("service"),
		failCheck("docs_root_exists", "no such directory"),
	)

	result := c.Check(context.Background())

	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %s, want %s", result.Status, StatusUnhealthy)
	}
	if result.Checks[1].Status != "fail" {
		t.Errorf("failing check status = %q, want fail", result.Checks[1].Status)
	}
	if result.Checks[1].Detail == "" {
		t.Error("failing check carries no detail")
	}
	// Remaining checks still run and report individually.
	if result.Checks[0].Status != "ok" {
		t.Errorf("passing check status = %q, want ok", result.Checks[0].Status)
	}
}

func TestCheckerCachesWithinTTL(t *testing.T) {
	var runs atomic.Int32
	counting := NamedCheck{
		Name: "counting",
		Run: func(ctx context.Context) (string, error) {
			runs.Add(1)
			return "", nil
		},
	}

	now := time.Unix(1000, 0)
	c := New("docs-service", 5*time.Second, counting)
	c.now = func() time.Time { return now }

	first := c.Check(context.Background())
	second := c.Check(context.Background())

	if got := runs.Load(); got != 1 {
		t.Errorf("check ran %d times within TTL, want 1", got)
	}
	if !second.ComputedAt.Equal(first.ComputedAt) {
		t.Error("cached result has a different ComputedAt")
	}

	// Advance past the TTL; the next call recomputes.
	now = now.Add(6 * time.Second)
	third := c.Check(context.Background())

	if got := runs.Load(); got != 2 {
		t.Errorf("check ran %d times after TTL expiry, want 2", got)
	}
	if third.ComputedAt.Equal(first.ComputedAt) {
		t.Error("recomputed result kept the stale ComputedAt")
	}
}

func TestCheckerInvalidate(t *testing.T) {
	var runs atomic.Int32
	c := New("docs-service", time.Hour, NamedCheck{
		Name: "counting",
		Run: func(ctx context.Context) (string, error) {
			runs.Add(1)
			return "", nil
		},
	})

	c.Check(context.Background())
	c.Invalidate()
	c.Check(context.Background())

	if got := runs.Load(); got != 2 {
		t.Errorf("check ran %d times across Invalidate, want 2", got)
	}
}

func TestCheckerCacheLookupCallback(t *testing.T) {
	var hits, misses atomic.Int32
	c := New("docs-service", time.Hour, okCheck("a"))
	c.OnCacheLookup(func(hit bool) {
		if hit {
			hits.Add(1)
		} else {
			misses.Add(1)
		}
	})

	c.Check(context.Background())
	c.Check(context.Background())

	if misses.Load() != 1 || hits.Load() != 1 {
		t.Errorf("hits=%d misses=%d, want 1 and 1", hits.Load(), misses.Load())
	}
}

func TestCheckerDefaultTTL(t *testing.T) {
	c := New("docs-service", 0, okCheck("a"))
	if c.ttl != DefaultCacheTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultCacheTTL)
	}
}

func TestDocsChecks(t *testing.T) {
	t.Run("healthy tree", func(t *testing.T) {
		root := t.TempDir()
		if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("# Hi\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		c := New("docs-service", time.Second, DocsChecks(root)...)
		result := c.Check(context.Background())

		if result.Status != StatusHealthy {
			t.Errorf("Status = %s, want healthy: %+v", result.Status, result.Checks)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		c := New("docs-service", time.Second, DocsChecks(filepath.Join(t.TempDir(), "nope"))...)
		result := c.Check(context.Background())

		if result.Status != StatusUnhealthy {
			t.Errorf("Status = %s, want unhealthy", result.Status)
		}
	})

	t.Run("no markdown files", func(t *testing.T) {
		c := New("docs-service", time.Second, DocsChecks(t.TempDir())...)
		result := c.Check(context.Background())

		if result.Status != StatusUnhealthy {
			t.Errorf("Status = %s, want unhealthy when no markdown exists", result.Status)
		}

		var mdCheck *Check
		for i := range result.Checks {
			if result.Checks[i].Name == "markdown_files" {
				mdCheck = &result.Checks[i]
			}
		}
		if mdCheck == nil || mdCheck.Status != "fail" {
			t.Errorf("markdown_files check = %+v, want fail", mdCheck)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy returns 200", func(t *testing.T) {
		c := New("docs-service", time.Second, okCheck("a"))
		rec := httptest.NewRecorder()

		c.Handler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}

		var result Result
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if result.Status != StatusHealthy {
			t.Errorf("body status = %s, want healthy", result.Status)
		}
	})

	t.Run("unhealthy returns 503", func(t *testing.T) {
		c := New("docs-service", time.Second, failCheck("root", "gone"))
		rec := httptest.NewRecorder()

		c.Handler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("post rejected", func(t *testing.T) {
		c := New("docs-service", time.Second, okCheck("a"))
		rec := httptest.NewRecorder()

		c.Handler()(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})

	t.Run("head has no body", func(t *testing.T) {
		c := New("docs-service", time.Second, okCheck("a"))
		rec := httptest.NewRecorder()

		c.Handler()(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("HEAD response has body: %q", rec.Body.String())
		}
	})
}

func TestHealthFreshAfterRootRemoved(t *testing.T) {
	root := t.TempDir()
	docsDir := filepath.Join(root, "docs")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(docsDir, "a.md"), []byte("# A\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	now := time.Unix(1000, 0)
	c := New("docs-service", 5*time.Second, DocsChecks(docsDir)...)
	c.now = func() time.Time { return now }

	if result := c.Check(context.Background()); result.Status != StatusHealthy {
		t.Fatalf("initial status = %s, want healthy", result.Status)
	}

	if err := os.RemoveAll(docsDir); err != nil {
		t.Fatal(err)
	}

	// Within the TTL the stale healthy result is still served.
	if result := c.Check(context.Background()); result.Status != StatusHealthy {
		t.Errorf("status within TTL = %s, want cached healthy", result.Status)
	}

	// After the TTL the failure surfaces.
	now = now.Add(6 * time.Second)
	if result := c.Check(context.Background()); result.Status != StatusUnhealthy {
		t.Errorf("status after TTL = %s, want unhealthy", result.Status)
	}
}
