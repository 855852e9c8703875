// Package testutils provides shared helpers for cmdshell package tests.
package testutils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cmdshell/internal/logger"
)

// WriteFile creates name under a per-test temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Lines joins lines with newlines and appends a trailing newline.
func Lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// CaptureLogs redirects the global logger to a buffer for the duration of the test.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}
