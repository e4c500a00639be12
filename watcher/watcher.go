// Package watcher reloads saves when the game writes them.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// Handler is called with the path of a save that was written.
	Handler func(path string) error
	Watcher struct {
		dir     string
		delay   time.Duration
		handler Handler
		logger  *zap.Logger
	}
)

const (
	SaveExtension = ".fos"
	// DefaultDelay gives the game time to finish writing before the save is read.
	DefaultDelay = 2 * time.Second
)

func New(dir string, delay time.Duration, handler Handler, logger *zap.Logger) *Watcher {
	return &Watcher{
		dir:     dir,
		delay:   delay,
		handler: handler,
		logger:  logger.With(zap.String("dir", dir)),
	}
}

// IsSaveEvent reports whether the event creates or writes a save file.
func IsSaveEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), SaveExtension)
}

// Run watches the directory until ctx is done. Bursts of events are collapsed: the
// handler runs once for the last save written, after delay passed without new events.
// Handler errors are logged and do not stop the watch.
func (r *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "Watcher.Run error")
	}
	defer watcher.Close()

	if err := watcher.Add(r.dir); err != nil {
		return errors.Wrapf(err, "Watcher.Run error: watch %s", r.dir)
	}
	r.logger.Info("watching save directory")

	// armed by the first save event
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	pending := ""

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !IsSaveEvent(event) {
				continue
			}
			r.logger.Debug("save changed", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			pending = event.Name
			timer.Reset(r.delay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			if pending == "" {
				continue
			}
			path := pending
			pending = ""
			if err := r.handler(path); err != nil {
				r.logger.Error("handling save failed", zap.String("path", path), zap.Error(err))
			}
		}
	}
}
