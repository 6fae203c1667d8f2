package orbit

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reloads a program when one of its shader files changes.
// fsnotify delivers events on its own goroutine; Poll drains them without
// blocking so the reload itself runs on the render thread.
type ShaderWatcher struct {
	watcher  *fsnotify.Watcher
	reloader *Reloader
	files    map[string]bool
}

var _ Watcher = (*ShaderWatcher)(nil)

// WatchShaders starts watching the reloader's shader files. The containing
// directories are watched so editors that replace files are seen too.
func WatchShaders(reloader *Reloader) (*ShaderWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	sw := &ShaderWatcher{watcher: watcher, reloader: reloader, files: make(map[string]bool)}

	for _, path := range []string{reloader.Vertex, reloader.Fragment} {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("shader watcher: %w", err)
		}
		sw.files[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}
	logger.Info("watching shaders", "vertex", reloader.Vertex, "fragment", reloader.Fragment)
	return sw, nil
}

// Poll reloads the program at most once if any shader file changed since
// the last call.
func (sw *ShaderWatcher) Poll() {
	changed := false
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if shaderChanged(sw.files, event) {
				logger.Debug("shader changed", "file", event.Name, "op", event.Op.String())
				changed = true
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("shader watcher", "err", err)
		default:
			if changed {
				// Errors are logged by Reload; the old program keeps rendering.
				_ = sw.reloader.Reload()
			}
			return
		}
	}
}

// Close stops watching.
func (sw *ShaderWatcher) Close() error {
	return sw.watcher.Close()
}

// shaderChanged reports whether event writes, creates or renames one of
// files (absolute paths).
func shaderChanged(files map[string]bool, event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return files[abs]
}
