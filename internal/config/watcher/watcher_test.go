package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "wezterm.lua")
	if err := os.WriteFile(path, []byte("-- v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w, path
}

func TestWatcherSignalsOnWrite(t *testing.T) {
	w, path := newTestWatcher(t)

	if err := os.WriteFile(path, []byte("-- v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestWatcherSignalsOnRename(t *testing.T) {
	w, path := newTestWatcher(t)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("-- v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after rename over the file")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	w, path := newTestWatcher(t)

	other := filepath.Join(filepath.Dir(path), "other.txt")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
		t.Fatal("sibling file write should not signal")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, _ := newTestWatcher(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Changes(); ok {
		t.Error("Changes should be closed")
	}
}
