package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

const reloadDebounce = 200 * time.Millisecond

// watchTarget is a watched file, by its cleaned path and base name.
type watchTarget struct {
	path string
	base string
}

func newWatchTarget(path string) watchTarget {
	path = filepath.Clean(path)
	return watchTarget{path: path, base: filepath.Base(path)}
}

// shouldReload reports whether an fsnotify event warrants re-running a script.
//
// Parameters:
//   - targets: Watched files (the script and, for a symlink, its target).
//   - event: Filesystem event to evaluate.
//
// Returns:
//   - bool: True if the event should trigger a reload.
func shouldReload(targets []watchTarget, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	for _, t := range targets {
		if name == t.path {
			return true
		}
		// Some editors write via temp + rename, resulting in partial paths.
		if filepath.Base(name) == t.base {
			return true
		}
	}
	return false
}

// resolveWatchPaths returns the cleaned path and, when path is a symlink, the
// cleaned path of its target (empty otherwise).
func resolveWatchPaths(path string) (link, target string) {
	link = filepath.Clean(path)
	resolved, err := filepath.EvalSymlinks(link)
	if err != nil || resolved == link {
		return link, ""
	}
	return link, filepath.Clean(resolved)
}

// startScriptWatcher watches path for changes and calls notify, debounced.
//
// Parameters:
//   - path: Full path to the script file.
//   - logger: Receives watcher errors.
//   - notify: Called from the watcher goroutine on every relevant change.
//
// Returns:
//   - *fsnotify.Watcher: A watcher the caller should close when done.
//   - error: Non-nil if the watcher cannot be created or a directory cannot be watched.
func startScriptWatcher(path string, logger hclog.Logger, notify func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	link, target := resolveWatchPaths(path)
	targets := []watchTarget{newWatchTarget(link)}
	if target != "" {
		targets = append(targets, newWatchTarget(target))
	}

	// Watching a directory is more reliable than watching a single file.
	dirs := map[string]bool{}
	for _, t := range targets {
		dir := filepath.Dir(t.path)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			watcher.Close() //nolint:errcheck
			return nil, err
		}
	}

	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !shouldReload(targets, event) {
					continue
				}
				// Debounce noisy editor save patterns.
				if time.Since(last) < reloadDebounce {
					continue
				}
				last = time.Now()
				logger.Debug("script change signalled", "event", event.String())
				notify()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("script watcher error", "error", err)
			}
		}
	}()
	return watcher, nil
}
