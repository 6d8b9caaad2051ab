package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
		stopFile     bool
	}{
		{
			name:         "version",
			args:         []string{"version"},
			expectedExit: 0,
		},
		{
			name:         "stop creates the sentinel",
			args:         []string{"stop", "--log-format", "text"},
			expectedExit: 0,
			stopFile:     true,
		},
		{
			name:         "invalid config",
			config:       "poll_interval: soon\n",
			args:         []string{"stop", "--log-format", "text"},
			expectedExit: 1,
		},
		{
			name:         "missing toolchain",
			config:       "compiler: hotloop-test-missing-compiler\n",
			args:         []string{"build", "--log-format", "text"},
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         []string{"deploy"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)

			if tt.config != "" {
				require.NoError(t, os.WriteFile("hotloop.yaml", []byte(tt.config), 0o600))
			}

			exitCode := run(tt.args)
			assert.Equal(t, tt.expectedExit, exitCode)

			if tt.stopFile {
				assert.FileExists(t, "exit_signal.tmp")
			}
		})
	}
}
