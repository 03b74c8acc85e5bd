package ccdebug

import (
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig watches path and live-toggles verbose tracing without a
// process restart: a file containing "1" or "true" enables Tracef output,
// any other contents disable it, and a file that cannot be read leaves
// the current setting unchanged. path is read
// synchronously once before WatchConfig returns. The returned stop
// function shuts down the watcher goroutine; it is safe to call at most
// once.
func WatchConfig(path string) (stop func(), err error) {
	applyFile(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					applyFile(path)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}

func applyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	v := strings.TrimSpace(string(data))
	SetEnabled(v == "1" || strings.EqualFold(v, "true"))
}
