package cliconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/solid/pkg/log"
)

// Watcher calls onChange whenever the watched config file is written.
// The parent directory is watched so editors that replace the file are seen.
// onChange always runs on the Run goroutine, one call at a time.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(ctx context.Context)
	log      log.Logger
}

// NewWatcher creates a watcher for path. onChange runs once writes have
// settled for debounce.
func NewWatcher(path string, debounce time.Duration, onChange func(ctx context.Context), logger log.Logger) *Watcher {
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		log:      log.OrNoop(logger),
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails to start.
// It returns only after any in-flight onChange call has finished.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Info("watching config", log.String("path", w.path), log.Duration("debounce", w.debounce))

	// settled receives one tick per quiet period; the buffer coalesces bursts.
	settled := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case settled <- struct{}{}:
				default:
				}
			})

		case <-settled:
			if ctx.Err() != nil {
				return nil
			}
			w.log.Debug("config changed", log.String("path", w.path))
			w.onChange(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("config watcher error", log.Err(err))
		}
	}
}
