package domain

import "maps"

// FileSnapshot maps absolute file paths to their last observed modification time in UnixNano.
type FileSnapshot map[string]int64

// Clone returns a copy of the snapshot.
func (s FileSnapshot) Clone() FileSnapshot {
	if s == nil {
		return FileSnapshot{}
	}
	return maps.Clone(s)
}

// ChangeKind classifies a detected file change.
type ChangeKind uint8

const (
	// ChangeAdded is a file present on disk but absent from the snapshot.
	ChangeAdded ChangeKind = iota
	// ChangeModified is a file whose modification time differs from the snapshot.
	ChangeModified
	// ChangeRemoved is a file in the snapshot that no longer exists.
	ChangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// FileChange is a single detected change.
type FileChange struct {
	Path string
	Kind ChangeKind
}

// ChangeSet is the result of one poll.
type ChangeSet []FileChange

// Detected reports whether at least one change was found.
func (c ChangeSet) Detected() bool {
	return len(c) > 0
}
