package sentinel_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hotloop/internal/adapters/sentinel"
	"go.trai.ch/hotloop/internal/core/domain"
)

func TestFile_Consume_Absent(t *testing.T) {
	stop := sentinel.NewFile(filepath.Join(t.TempDir(), domain.DefaultStopFile))

	requested, err := stop.Consume()

	require.NoError(t, err)
	assert.False(t, requested)
}

func TestFile_Consume_RemovesMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultStopFile)
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	stop := sentinel.NewFile(path)

	requested, err := stop.Consume()
	require.NoError(t, err)
	assert.True(t, requested)
	assert.NoFileExists(t, path)

	again, err := stop.Consume()
	require.NoError(t, err)
	assert.False(t, again)
}

func TestFile_Request(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultStopFile)
	stop := sentinel.NewFile(path)

	require.NoError(t, stop.Request())
	require.NoError(t, stop.Request())
	assert.FileExists(t, path)
	assert.Equal(t, path, stop.Path())

	requested, err := stop.Consume()
	require.NoError(t, err)
	assert.True(t, requested)
}

func TestFile_Request_Error(t *testing.T) {
	stop := sentinel.NewFile(filepath.Join(t.TempDir(), "missing", domain.DefaultStopFile))

	err := stop.Request()

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to request stop")
}

func TestFile_Consume_Error(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, domain.DefaultStopFile)
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o750) })

	requested, err := sentinel.NewFile(path).Consume()

	require.Error(t, err)
	assert.False(t, requested)
	assert.ErrorContains(t, err, domain.ErrStopSignalFailed.Error())
}
