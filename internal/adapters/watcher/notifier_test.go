package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hotloop/internal/adapters/watcher"
	"go.trai.ch/hotloop/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startNotifier(t *testing.T, dir string) (<-chan struct{}, <-chan error) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(t.Context())
	wake := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() { done <- watcher.NewNotifier(".odin", mockLogger).Run(ctx, dir, wake) }()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("notifier did not stop")
		}
	})
	return wake, done
}

// touchUntilWake rewrites path until the notifier reports it. Watches are registered
// asynchronously, so the first writes may go unnoticed.
func touchUntilWake(t *testing.T, path string, wake <-chan struct{}) {
	t.Helper()
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(time.Now().String()), 0o600)
		select {
		case <-wake:
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 10*time.Millisecond)
}

func TestNotifier_WakesOnTrackedFile(t *testing.T) {
	dir := t.TempDir()
	wake, _ := startNotifier(t, dir)

	touchUntilWake(t, filepath.Join(dir, "game.odin"), wake)
}

func TestNotifier_WatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	wake, _ := startNotifier(t, dir)
	touchUntilWake(t, filepath.Join(dir, "game.odin"), wake)

	sub := filepath.Join(dir, "entities")
	require.NoError(t, os.Mkdir(sub, 0o750))

	touchUntilWake(t, filepath.Join(sub, "player.odin"), wake)
}

func TestNotifier_IgnoresUntrackedFiles(t *testing.T) {
	dir := t.TempDir()
	wake, _ := startNotifier(t, dir)
	touchUntilWake(t, filepath.Join(dir, "game.odin"), wake)

	// Let the debounce window of the tracked writes drain.
	time.Sleep(4 * watcher.DefaultDebounceWindow)
	select {
	case <-wake:
	default:
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("todo"), 0o600))

	select {
	case <-wake:
		t.Fatal("untracked file woke the loop")
	case <-time.After(6 * watcher.DefaultDebounceWindow):
	}
}

func TestNotifier_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)

	go func() {
		done <- watcher.NewNotifier(".odin", mocks.NewMockLogger(ctrl)).Run(ctx, t.TempDir(), make(chan struct{}, 1))
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("notifier did not stop")
	}
}
