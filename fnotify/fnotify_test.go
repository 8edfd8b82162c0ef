package fnotify

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNotifyCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	n := New("test")
	n.Debounce = 50 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan string, 4)
	done := make(chan error, 1)
	go func() { done <- n.Notify(ctx, []string{path}, changed) }()

	// Let the watcher start before writing.
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("[{}]"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case file := <-changed:
		if file != path {
			t.Errorf("changed file == %#v, expected %#v", file, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case file := <-changed:
		t.Errorf("burst reported twice: %#v", file)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Notify returned %v", err)
	}
}

func TestNotifyMissingFile(t *testing.T) {
	n := New("test")
	err := n.Notify(context.Background(), []string{filepath.Join(t.TempDir(), "nope.json")}, make(chan string))
	if err == nil {
		t.Errorf("Notify on a missing file succeeded")
	}
}
