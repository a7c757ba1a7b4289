package a11y

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/m-mizutani/goerr/v2"

	"github.com/dm/alertcard/internal/config"
)

const defaultDebounce = 100 * time.Millisecond

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithLogger sets the logger for the watcher.
func WithLogger(l *slog.Logger) Option {
	return func(w *FileWatcher) { w.logger = l }
}

// WithDebounce sets how long the file must be quiet before it is reloaded.
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) { w.debounce = d }
}

// FileWatcher is a Source backed by a preferences file. It watches the
// file's directory so atomic saves (rename-over) are seen. A missing file
// means motion is allowed; an unreadable one keeps the last good value.
type FileWatcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	current bool
	changes chan bool
}

// NewFileWatcher reads the initial preference from path and returns a
// watcher. Call Run to start publishing changes.
func NewFileWatcher(path string, opts ...Option) *FileWatcher {
	w := &FileWatcher{
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		logger:   slog.Default(),
		changes:  make(chan bool, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	if v, ok := w.load(); ok {
		w.current = v
	}
	return w
}

// Current implements Source.
func (w *FileWatcher) Current() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Changes implements Source. Only the latest unread value is kept.
func (w *FileWatcher) Changes() <-chan bool {
	return w.changes
}

// Run watches the file until ctx is done. It returns an error only when the
// watch cannot be established.
func (w *FileWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return goerr.Wrap(err, "failed to create file watcher")
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return goerr.Wrap(err, "failed to watch preferences directory", goerr.V("dir", dir))
	}
	w.logger.Debug("watching preferences", "path", w.path)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("preferences watcher error", "err", err)

		case <-timer.C:
			if v, ok := w.load(); ok {
				w.publish(v)
			}
		}
	}
}

// load reads the preference. ok is false when the file exists but cannot be
// used, in which case the previous value stands.
func (w *FileWatcher) load() (reduced bool, ok bool) {
	prefs, err := config.Load(w.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, true
		}
		w.logger.Warn("ignoring unreadable preferences", "path", w.path, "err", err)
		return false, false
	}
	return prefs.Accessibility.ReducedMotion, true
}

func (w *FileWatcher) publish(v bool) {
	w.mu.Lock()
	if v == w.current {
		w.mu.Unlock()
		return
	}
	w.current = v
	w.mu.Unlock()

	w.logger.Info("reduced motion preference changed", "reduced_motion", v)

	// Run is the only sender, so after dropping a stale value the send
	// cannot block.
	select {
	case <-w.changes:
	default:
	}
	w.changes <- v
}
