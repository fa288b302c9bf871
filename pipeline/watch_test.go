package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dhamidi/junparse/format"
)

func waitResult(t *testing.T, results <-chan Result, path string) Result {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case res := <-results:
			if res.Path == path && res.Err == nil {
				return res
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s to be rendered", path)
		}
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	existing := writeTree(t, dir, "Existing.json", classTree)

	w, err := NewWatcher(dir, &Batch{Renderer: format.New()})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	results := make(chan Result, 16)
	w.Rendered = results

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitResult(t, results, existing)

	added := filepath.Join(dir, "Added.json")
	if err := os.WriteFile(added, []byte(classTree), 0644); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	res := waitResult(t, results, added)
	if res.Output != filepath.Join(dir, "Added.java") {
		t.Errorf("Output = %q, want Added.java", res.Output)
	}
	data, err := os.ReadFile(res.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != classSource {
		t.Errorf("Added.java = %q, want %q", data, classSource)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), &Batch{Renderer: format.New()})
	if err == nil {
		t.Fatal("NewWatcher on a missing directory succeeded")
	}
}
