package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxload/internal/app"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{
			name:         "Load compiles a module",
			args:         []string{"jsxload", "load", "Hello"},
			expectedExit: 0,
		},
		{
			name:         "Build writes named modules",
			args:         []string{"jsxload", "build", "Hello"},
			expectedExit: 0,
			expectedOut:  `define("jsx!Hello"`,
		},
		{
			name:         "Load of a missing module fails",
			args:         []string{"jsxload", "load", "Missing"},
			expectedExit: 1,
		},
		{
			name:         "Unknown runtime fails",
			args:         []string{"jsxload", "--runtime", "deno", "load", "Hello"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			configContent := "root: src\n"
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "jsxload.yaml"), []byte(configContent), 0o600))
			require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "src"), 0o750))
			require.NoError(t, os.WriteFile(
				filepath.Join(tmpDir, "src", "Hello.jsx"),
				[]byte("var hello = <div>Hello</div>;\n"),
				0o600,
			))

			// Change to tmpDir for relative path resolution
			t.Chdir(tmpDir)

			os.Args = tt.args

			var out bytes.Buffer
			exitCode := run(func(a *app.App) {
				a.WithOutput(&out)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.expectedOut != "" {
				assert.Contains(t, out.String(), tt.expectedOut)
			}
		})
	}
}
