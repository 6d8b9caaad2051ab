package ports

import (
	"context"

	"go.trai.ch/hotloop/internal/core/domain"
)

// ChangeDetector tracks modification times of the source files under a root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type ChangeDetector interface {
	// Snapshot records the current state of root, replacing any prior snapshot.
	Snapshot(root string) error
	// Poll compares root against the snapshot and commits what it observed.
	Poll(root string) (domain.ChangeSet, error)
}

// StopSignal is the out-of-band stop request polled by the watch loop.
type StopSignal interface {
	// Consume reports whether a stop was requested and clears the request.
	Consume() (bool, error)
}

// Notifier wakes the watch loop early when the file system reports activity.
type Notifier interface {
	// Run watches root until ctx is done, sending on wake when tracked files change.
	Run(ctx context.Context, root string, wake chan<- struct{}) error
}
