package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cmdshell/internal/parser"
)

// ScriptError reports the line of a command file that failed.
type ScriptError struct {
	Source string
	Line   int
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// RunScript executes the command file at path. See RunScriptFrom.
func (d *Dispatcher) RunScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script %s: %w", path, err)
	}
	defer f.Close()
	return d.RunScriptFrom(f, path)
}

// RunScriptFrom executes every line of r in order. Blank lines and lines whose
// first non-blank character is '#' are skipped. Execution stops at the first
// failing line, returned as a *ScriptError, or when a command calls Stop. The
// exit code is reset once before the first line.
func (d *Dispatcher) RunScriptFrom(r io.Reader, source string) error {
	d.ResetStatus()
	d.running = true
	defer func() { d.running = false }()

	in := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := parser.ReadLine(in)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read script %s: %w", source, err)
		}
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d.log.Debug("Script line", "source", source, "line", lineNo)
		if err := d.Execute(line); err != nil {
			return &ScriptError{Source: source, Line: lineNo, Err: err}
		}
		if !d.running {
			d.log.Debug("Script stopped", "source", source, "line", lineNo)
			return nil
		}
	}
}
