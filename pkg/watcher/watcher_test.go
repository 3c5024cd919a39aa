package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "part.obj")
	other := filepath.Join(dir, "other.obj")
	for _, f := range []string{target, other} {
		if err := os.WriteFile(f, []byte("v 0 0 0\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	w, err := New(20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Add(target); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) { changes <- path })
	}()

	// Unwatched file in the same directory
	if err := os.WriteFile(other, []byte("v 1 1 1\n"), 0o600); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(target, []byte("v 1 2 3\n"), 0o600); err != nil {
		t.Fatalf("write target: %v", err)
	}

	select {
	case path := <-changes:
		want, _ := filepath.Abs(target)
		if path != want {
			t.Errorf("expected change for %s, got %s", want, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcherAddMissingDirectory(t *testing.T) {
	w, err := New(time.Millisecond, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Join(t.TempDir(), "missing", "model.stl")); err == nil {
		t.Error("expected error for missing directory")
	}
}
