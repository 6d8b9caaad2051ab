// Package sentinel implements the marker-file stop request.
package sentinel

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StopSignal = (*File)(nil)

// File is a stop request represented by the existence of a marker file.
type File struct {
	path string
}

// NewFile creates a stop signal backed by the marker at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the marker location.
func (f *File) Path() string {
	return f.path
}

// Consume reports whether the marker exists and deletes it.
func (f *File) Consume() (bool, error) {
	err := os.Remove(f.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, domain.ErrStopSignalFailed.Error()), "path", f.path)
	}
}

// Request creates the marker. An existing marker is left in place.
func (f *File) Request() error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to request stop"), "path", f.path)
	}
	return file.Close()
}
