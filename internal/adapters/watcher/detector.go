// Package watcher detects changes in the tracked source tree.
package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeDetector = (*Detector)(nil)

// skipDirectories are directories that are never scanned.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Detector implements ports.ChangeDetector by comparing modification times
// against a snapshot it owns.
type Detector struct {
	extension string

	mu       sync.Mutex
	snapshot domain.FileSnapshot
}

// NewDetector creates a Detector tracking files whose name ends in extension.
func NewDetector(extension string) *Detector {
	return &Detector{
		extension: extension,
		snapshot:  make(domain.FileSnapshot),
	}
}

// Files returns a copy of the current snapshot.
func (d *Detector) Files() domain.FileSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot.Clone()
}

// Snapshot records every tracked file under root, replacing the prior snapshot.
func (d *Detector) Snapshot(root string) error {
	abs, err := absRoot(root)
	if err != nil {
		return err
	}

	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.ErrSourceDirNotFound, "path", abs)
	}

	next := make(domain.FileSnapshot)
	walkErr := filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				return err
			}
			// Unreadable subdirectory: nothing to record below it.
			return nil
		}
		if entry.IsDir() {
			if path != abs && skipDirectories[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !d.tracks(entry.Name()) {
			return nil
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			// Vanished between listing and stat.
			return nil
		}
		next[path] = info.ModTime().UnixNano()
		return nil
	})
	if walkErr != nil {
		return zerr.With(zerr.Wrap(walkErr, domain.ErrSourceScanFailed.Error()), "path", abs)
	}

	d.mu.Lock()
	d.snapshot = next
	d.mu.Unlock()
	return nil
}

// Poll compares root against the snapshot. Every inspected file is committed
// before returning, and entries for files no longer on disk are removed.
//
//nolint:cyclop // the walk callback handles each entry kind inline
func (d *Detector) Poll(root string) (domain.ChangeSet, error) {
	abs, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var (
		changes    domain.ChangeSet
		seen       = make(map[string]struct{}, len(d.snapshot))
		unreadable []string
	)

	walkErr := filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			unreadable = append(unreadable, path)
			if path == abs || (entry != nil && entry.IsDir()) {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			if path != abs && skipDirectories[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !d.tracks(entry.Name()) {
			return nil
		}

		info, err := os.Stat(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			// Listed but not inspectable: keep the previous entry as is.
			if _, known := d.snapshot[path]; known {
				seen[path] = struct{}{}
			}
			return nil
		}
		if err != nil || info.IsDir() {
			// Not seen: the sweep below drops it if it was tracked.
			return nil
		}

		seen[path] = struct{}{}
		mtime := info.ModTime().UnixNano()
		previous, known := d.snapshot[path]
		switch {
		case !known:
			changes = append(changes, domain.FileChange{Path: path, Kind: domain.ChangeAdded})
		case previous != mtime:
			changes = append(changes, domain.FileChange{Path: path, Kind: domain.ChangeModified})
		}
		d.snapshot[path] = mtime
		return nil
	})
	if walkErr != nil {
		return changes, zerr.With(zerr.Wrap(walkErr, domain.ErrSourceScanFailed.Error()), "path", abs)
	}

	for path := range d.snapshot {
		if _, ok := seen[path]; ok || under(path, unreadable) {
			continue
		}
		delete(d.snapshot, path)
		changes = append(changes, domain.FileChange{Path: path, Kind: domain.ChangeRemoved})
	}

	return changes, nil
}

func (d *Detector) tracks(name string) bool {
	return strings.HasSuffix(name, d.extension)
}

func absRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSourceScanFailed.Error()), "path", root)
	}
	return abs, nil
}

// under reports whether path lies inside one of dirs.
func under(path string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
