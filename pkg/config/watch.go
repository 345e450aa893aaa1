package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
)

// Watch reloads the config file at path whenever it changes and sends each
// valid result on the returned channel. Invalid edits are logged and skipped.
// The channel is closed when ctx is done. notify, if not nil, is called after
// every send so a blocked event loop can wake up.
func Watch(ctx context.Context, path string, notify func()) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	// Watch the directory; editors often replace the file instead of writing it.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	updates := make(chan *Config, 1)
	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					glog.Warningf("Ignoring config change: %v", err)
					continue
				}

				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}
				if notify != nil {
					notify()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				glog.Warningf("Config watcher error: %v", err)
			}
		}
	}()

	return updates, nil
}
