// Package execution runs external programs on behalf of the dispatcher when a
// line names no registered command.
package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"cmdshell/internal/logger"
	"cmdshell/pkg/cmdtypes"
)

// Runner executes a file with arguments. The dispatcher depends on this
// interface so tests can substitute a fake.
type Runner interface {
	RunFile(ctx context.Context, path string, args []string) error
}

// ProcessRunner runs files as child processes wired to the given streams.
type ProcessRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Env is appended to the current environment of the child.
	Env []string
}

// NewProcessRunner creates a runner writing to stdout and stderr.
func NewProcessRunner(stdout, stderr io.Writer) *ProcessRunner {
	return &ProcessRunner{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}
}

// RunFile checks that path names an existing regular file and executes it with
// args. Each failure is a *cmdtypes.CommandError: KindExternalNotFound,
// KindExternalNotFile or KindExternalNonZeroExit. Errors starting the process
// (for example a missing execute bit) are reported as KindExternalNonZeroExit
// with exit code -1 and the cause attached.
func (r *ProcessRunner) RunFile(ctx context.Context, path string, args []string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cmdtypes.CommandError{Kind: cmdtypes.KindExternalNotFound, Path: path, Err: err}
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return &cmdtypes.CommandError{Kind: cmdtypes.KindExternalNotFile, Path: path}
	}

	logger.Debug("Executing external file", "path", path, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &cmdtypes.CommandError{
			Kind:     cmdtypes.KindExternalNonZeroExit,
			Path:     path,
			ExitCode: code,
			Err:      err,
		}
	}

	return nil
}
