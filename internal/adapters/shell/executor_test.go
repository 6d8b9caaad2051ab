package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hotloop/internal/adapters/shell"
	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecutor_Execute_StreamsOutput(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var out bytes.Buffer
	err := executor.Execute(t.Context(), domain.NewCommand("sh", "-c", "echo compiled; echo warning >&2"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "compiled")
	assert.Contains(t, out.String(), "warning")
}

func TestExecutor_Execute_NilWriterLogsLines(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(t.Context(), domain.NewCommand("sh", "-c", "echo line1; printf line2"), nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var out bytes.Buffer
	err := executor.Execute(t.Context(), domain.NewCommand("sh", "-c", "echo broken; exit 3"), &out)

	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
	assert.ErrorContains(t, err, "exit status 3")
	assert.Contains(t, out.String(), "broken")
}

func TestExecutor_Execute_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	err := executor.Execute(t.Context(), domain.NewCommand("hotloop-definitely-missing-binary"), &bytes.Buffer{})

	require.Error(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	require.NoError(t, executor.Execute(t.Context(), domain.Command{}, nil))
}

func TestExecutor_Execute_DirAndEnv(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	dir := t.TempDir()
	cmd := domain.NewCommand("sh", "-c", "echo $HOTLOOP_TEST > marker")
	cmd.Dir = dir
	cmd.Env = []string{"HOTLOOP_TEST=from-env"}

	require.NoError(t, executor.Execute(t.Context(), cmd, &bytes.Buffer{}))

	data, err := os.ReadFile(filepath.Join(dir, "marker"))
	require.NoError(t, err)
	assert.Equal(t, "from-env\n", string(data))
}

func TestExecutor_Output(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	out, err := executor.Output(t.Context(), domain.NewCommand("sh", "-c", "echo /opt/odin; echo noise >&2"))

	require.NoError(t, err)
	assert.Equal(t, "/opt/odin\n", string(out))
}

func TestExecutor_Output_Failure(t *testing.T) {
	skipOnWindows(t)
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	out, err := executor.Output(t.Context(), domain.NewCommand("sh", "-c", "echo nope >&2; exit 2"))

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "exit status 2")
}
