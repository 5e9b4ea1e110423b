package check

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settle groups bursts of writes from editors into one reload.
const settle = 100 * time.Millisecond

// Watcher reloads the configuration file when it changes.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher starts watching the directory holding path. Editors often
// replace a file instead of writing it in place, so the directory is watched
// and events are filtered by name.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("error adding directory to watcher: %w", err)
	}

	return &Watcher{path: abs, watcher: fw, logger: logger}, nil
}

// Run calls onChange with the reloaded configuration after every change to
// the file, until ctx is done or onChange returns an error. A file that fails
// to parse is logged and skipped.
func (w *Watcher) Run(ctx context.Context, onChange func(Config) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			time.Sleep(settle)
			w.drain()

			config, err := LoadConfig(w.path)
			if err != nil {
				w.logger.Warn("Ignoring invalid config", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.logger.Info("Config changed", zap.String("path", w.path))
			if err := onChange(config); err != nil {
				return err
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drain discards events queued while settling.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
