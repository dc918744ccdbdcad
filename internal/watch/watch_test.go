package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnChange(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := New(path, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("changed"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after file change")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.srt")
	other := filepath.Join(tmpDir, "other.srt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := New(path, 50*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("noise"), 0644); err != nil {
		t.Fatalf("failed to write other file: %v", err)
	}

	select {
	case <-fired:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	w, err := New(path, 50*time.Millisecond, func() {})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Close()

	// a change after Close must not panic the watcher goroutine
	if err := os.WriteFile(path, []byte("changed"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
}
