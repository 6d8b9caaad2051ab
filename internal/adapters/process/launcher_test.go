package process_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hotloop/internal/adapters/process"
	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLauncher_Launch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	exited := make(chan struct{})
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(string) { close(exited) })

	dir := t.TempDir()
	cmd := domain.NewCommand("sh", "-c", "echo $LD_LIBRARY_PATH > env.txt")
	cmd.Dir = dir
	cmd.Env = []string{"LD_LIBRARY_PATH=build/hot_reload/linux"}

	launcher := process.NewLauncher(mockLogger)
	launcher.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})

	pid, err := launcher.Launch(cmd)
	require.NoError(t, err)
	assert.Positive(t, pid)

	select {
	case <-exited:
	case <-time.After(10 * time.Second):
		t.Fatal("child was not reaped")
	}

	data, err := os.ReadFile(filepath.Join(dir, "env.txt"))
	require.NoError(t, err)
	assert.Equal(t, "build/hot_reload/linux\n", string(data))
}

func TestLauncher_Launch_NonZeroExitWarns(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	exited := make(chan struct{})
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(string) { close(exited) })

	launcher := process.NewLauncher(mockLogger)
	launcher.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})

	_, err := launcher.Launch(domain.NewCommand("sh", "-c", "exit 4"))
	require.NoError(t, err)

	select {
	case <-exited:
	case <-time.After(10 * time.Second):
		t.Fatal("child was not reaped")
	}
}

func TestLauncher_Launch_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	launcher := process.NewLauncher(mocks.NewMockLogger(ctrl))

	pid, err := launcher.Launch(domain.NewCommand(filepath.Join(t.TempDir(), "game_hot_reload.bin")))

	require.Error(t, err)
	assert.Zero(t, pid)
	assert.ErrorContains(t, err, domain.ErrProcessSpawnFailed.Error())
}
