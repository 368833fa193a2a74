// Package watch re-runs a handler whenever translation files change.
//
// Events are handled on a single goroutine: each handler call finishes before
// the next event is read, so regenerations never overlap. Handler errors are
// logged and the loop keeps running.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/i18ntypes/errors"
	"github.com/teranos/i18ntypes/locale"
	"github.com/teranos/i18ntypes/logger"
)

// Handler is called with the file that triggered a change
type Handler func(name string) error

// Watcher watches a locale directory tree for translation file changes
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	onChange Handler
	debounce time.Duration
	log      *zap.SugaredLogger
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce coalesces events arriving within d into one handler call.
// Zero (the default) calls the handler once per event.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New creates a watcher on dir and all of its subdirectories
func New(dir string, onChange Handler, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		dir:      dir,
		watcher:  fw,
		onChange: onChange,
		log:      logger.ComponentLogger("watch"),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addTree(dir); err != nil {
		fw.Close()
		return nil, err
	}

	return w, nil
}

// addTree adds root and every directory below it
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.FileSystem(err, "failed to walk %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return errors.FileSystem(err, "failed to watch %s", path)
		}
		w.log.Debugw("Watching directory", logger.FieldDir, path)
		return nil
	})
}

// Relevant reports whether an event should trigger regeneration
func Relevant(event fsnotify.Event) bool {
	if !locale.IsLocaleFile(event.Name) {
		return false
	}
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Infow("Watching for locale changes", logger.FieldDir, w.dir)

	var (
		pending string
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.trackNewDirectory(event)

			if !Relevant(event) {
				continue
			}

			w.log.Debugw("Locale change detected",
				logger.FieldFile, event.Name,
				logger.FieldEvent, event.Op.String())

			if w.debounce <= 0 {
				w.handle(event.Name)
				continue
			}

			pending = event.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.handle(pending)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// trackNewDirectory starts watching directories created after New
func (w *Watcher) trackNewDirectory(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := w.addTree(event.Name); err != nil {
		w.log.Warnw("Failed to watch new directory", logger.FieldDir, event.Name, logger.FieldError, err)
	}
}

func (w *Watcher) handle(name string) {
	if err := w.onChange(name); err != nil {
		w.log.Errorw("Regeneration failed",
			logger.FieldFile, name,
			logger.FieldError, err)
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
