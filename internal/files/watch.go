package files

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDropDir calls onFile with every file created or rewritten in dir once
// it has been quiet for debounce. onErr receives watcher and load errors.
// The watch stops when ctx is done.
func WatchDropDir(ctx context.Context, dir string, debounce time.Duration, onFile func(Document), onErr func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]*time.Timer)
	)
	fire := func(path string) {
		mu.Lock()
		delete(pending, path)
		mu.Unlock()

		doc, err := Load(path)
		if err != nil {
			onErr(err)
			return
		}
		onFile(doc)
	}

	go func() {
		defer func() {
			_ = watcher.Close()
			mu.Lock()
			for _, t := range pending {
				t.Stop()
			}
			mu.Unlock()
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				path := event.Name
				mu.Lock()
				if t, ok := pending[path]; ok {
					t.Reset(debounce)
				} else {
					pending[path] = time.AfterFunc(debounce, func() { fire(path) })
				}
				mu.Unlock()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				onErr(err)
			}
		}
	}()
	return nil
}
