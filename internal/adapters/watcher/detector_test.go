package watcher_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hotloop/internal/adapters/watcher"
	"go.trai.ch/hotloop/internal/core/domain"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// writeSource creates path under dir with a fixed mtime so comparisons never depend on
// file system timestamp granularity.
func writeSource(t *testing.T, dir, rel string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("package game\n"), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func sourceTree(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeSource(t, dir, "a.odin", epoch)
	writeSource(t, dir, "sub/b.odin", epoch)
	writeSource(t, dir, "notes.txt", epoch)
	writeSource(t, dir, ".git/hooks/x.odin", epoch)
	return dir
}

func TestDetector_Snapshot(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")

	require.NoError(t, d.Snapshot(dir))

	assert.Equal(t, domain.FileSnapshot{
		filepath.Join(dir, "a.odin"):     epoch.UnixNano(),
		filepath.Join(dir, "sub/b.odin"): epoch.UnixNano(),
	}, d.Files())
}

func TestDetector_Snapshot_Replaces(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	require.NoError(t, os.Remove(filepath.Join(dir, "a.odin")))
	require.NoError(t, d.Snapshot(dir))

	assert.NotContains(t, d.Files(), filepath.Join(dir, "a.odin"))
	assert.Len(t, d.Files(), 1)
}

func TestDetector_Snapshot_MissingRoot(t *testing.T) {
	d := watcher.NewDetector(".odin")

	err := d.Snapshot(filepath.Join(t.TempDir(), "source"))

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSourceDirNotFound.Error())
}

func TestDetector_Snapshot_RelativeRootYieldsAbsoluteKeys(t *testing.T) {
	dir := sourceTree(t)
	t.Chdir(dir)
	d := watcher.NewDetector(".odin")

	require.NoError(t, d.Snapshot("sub"))

	for path := range d.Files() {
		assert.True(t, filepath.IsAbs(path), path)
	}
}

func TestDetector_Poll_IdempotentSnapshot(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	changes, err := d.Poll(dir)

	require.NoError(t, err)
	assert.False(t, changes.Detected())
	assert.Empty(t, changes)
}

func TestDetector_Poll_NewFile(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	path := writeSource(t, dir, "sub/c.odin", epoch)

	changes, err := d.Poll(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.ChangeSet{{Path: path, Kind: domain.ChangeAdded}}, changes)
	assert.Contains(t, d.Files(), path)

	again, err := d.Poll(dir)
	require.NoError(t, err)
	assert.False(t, again.Detected())
}

func TestDetector_Poll_Modification(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	later := epoch.Add(time.Second)
	path := filepath.Join(dir, "a.odin")
	require.NoError(t, os.Chtimes(path, later, later))

	changes, err := d.Poll(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.ChangeSet{{Path: path, Kind: domain.ChangeModified}}, changes)
	assert.Equal(t, later.UnixNano(), d.Files()[path])
}

func TestDetector_Poll_Deletion(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	path := filepath.Join(dir, "sub/b.odin")
	require.NoError(t, os.Remove(path))

	changes, err := d.Poll(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.ChangeSet{{Path: path, Kind: domain.ChangeRemoved}}, changes)
	assert.NotContains(t, d.Files(), path)
}

func TestDetector_Poll_CommitsEveryInspectedFile(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	later := epoch.Add(time.Minute)
	a := filepath.Join(dir, "a.odin")
	b := filepath.Join(dir, "sub/b.odin")
	require.NoError(t, os.Chtimes(a, later, later))
	require.NoError(t, os.Chtimes(b, later, later))

	changes, err := d.Poll(dir)
	require.NoError(t, err)
	assert.Len(t, changes, 2)

	files := d.Files()
	assert.Equal(t, later.UnixNano(), files[a])
	assert.Equal(t, later.UnixNano(), files[b])

	again, err := d.Poll(dir)
	require.NoError(t, err)
	assert.False(t, again.Detected())
}

func TestDetector_Poll_PollWithoutSnapshotReportsEverythingAdded(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")

	changes, err := d.Poll(dir)

	require.NoError(t, err)
	assert.Len(t, changes, 2)
	for _, c := range changes {
		assert.Equal(t, domain.ChangeAdded, c.Kind)
	}
}

func TestDetector_Poll_RootRemoved(t *testing.T) {
	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	require.NoError(t, os.RemoveAll(dir))

	changes, err := d.Poll(dir)
	require.NoError(t, err)
	assert.Len(t, changes, 2)
	assert.Empty(t, d.Files())
}

func TestDetector_Poll_UnreadableDirectoryKeepsEntries(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Chmod(sub, 0o000))
	t.Cleanup(func() { _ = os.Chmod(sub, 0o750) })

	changes, err := d.Poll(dir)
	require.NoError(t, err)
	assert.False(t, changes.Detected())
	assert.Contains(t, d.Files(), filepath.Join(sub, "b.odin"))
}

func TestDetector_Poll_UntraversableDirectoryKeepsEntries(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	dir := sourceTree(t)
	d := watcher.NewDetector(".odin")
	require.NoError(t, d.Snapshot(dir))

	// Listable but not searchable: entries show up, stat on them fails.
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Chmod(sub, 0o600))
	t.Cleanup(func() { _ = os.Chmod(sub, 0o750) })

	changes, err := d.Poll(dir)
	require.NoError(t, err)
	assert.False(t, changes.Detected())
	assert.Equal(t, epoch.UnixNano(), d.Files()[filepath.Join(sub, "b.odin")])

	require.NoError(t, os.Chmod(sub, 0o750))

	changes, err = d.Poll(dir)
	require.NoError(t, err)
	assert.False(t, changes.Detected(), "restored access must not report the file as added")
}
