package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier implements ports.Notifier using fsnotify.
// It only signals that something may have changed; the detector decides what did.
type Notifier struct {
	extension string
	window    time.Duration
	clock     clockwork.Clock
	logger    ports.Logger
}

// NewNotifier creates a Notifier for files ending in extension.
func NewNotifier(extension string, logger ports.Logger) *Notifier {
	return &Notifier{
		extension: extension,
		window:    DefaultDebounceWindow,
		clock:     clockwork.NewRealClock(),
		logger:    logger,
	}
}

// Run watches root recursively until ctx is done.
// Wake signals are sent without blocking; a pending signal absorbs later ones.
func (n *Notifier) Run(ctx context.Context, root string, wake chan<- struct{}) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsWatcher.Close() }()

	for _, dir := range directories(root) {
		if err := fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	debouncer := NewDebouncer(n.clock, n.window, func([]string) {
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			n.handle(fsWatcher, debouncer, event)
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			n.logger.Warn("File watcher error: " + err.Error())
		}
	}
}

func (n *Notifier) handle(fsWatcher *fsnotify.Watcher, debouncer *Debouncer, event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if skipDirectories[info.Name()] {
				return
			}
			for _, dir := range directories(event.Name) {
				_ = fsWatcher.Add(dir)
			}
			// Files may have landed before the watch was added.
			debouncer.Add(event.Name)
			return
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if strings.HasSuffix(event.Name, n.extension) {
		debouncer.Add(event.Name)
	}
}

// directories returns root and every directory below it that is not skipped.
func directories(root string) []string {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable directories are not watched
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDirectories[d.Name()] {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs
}
