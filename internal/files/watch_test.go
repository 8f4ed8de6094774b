package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDropDir(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	docs := make(chan Document, 4)
	errs := make(chan error, 4)
	if err := WatchDropDir(ctx, dir, 20*time.Millisecond, func(d Document) { docs <- d }, func(err error) { errs <- err }); err != nil {
		t.Fatalf("WatchDropDir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "dropped.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case d := <-docs:
		if d.Name != "dropped.txt" || string(d.Data) != "hi" {
			t.Errorf("doc = %+v", d)
		}
	case err := <-errs:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("dropped file was not reported")
	}
}

func TestWatchDropDirMissing(t *testing.T) {
	err := WatchDropDir(context.Background(), filepath.Join(t.TempDir(), "missing"), time.Millisecond, func(Document) {}, func(error) {})
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
