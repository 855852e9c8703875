package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"cmdshell/internal/commands"
	"cmdshell/internal/commands/builtin"
	"cmdshell/internal/commands/manifest"
	"cmdshell/internal/config"
	"cmdshell/internal/execution"
	"cmdshell/internal/logger"
	"cmdshell/internal/output"
	"cmdshell/internal/shell"
)

type appOptions struct {
	interactive bool
	testMode    bool
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

// app wires a dispatcher from the loaded configuration.
type app struct {
	dispatcher *shell.Dispatcher
	errOut     *output.Printer
	reader     shell.LineReader
}

func newApp(cfg config.Config, opts appOptions) (*app, error) {
	if opts.stdin == nil {
		opts.stdin = os.Stdin
	}
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}
	if opts.stderr == nil {
		opts.stderr = os.Stderr
	}

	mode := output.ParseColorMode(cfg.Color)
	if opts.testMode {
		mode = output.ModePlain
	}
	out := output.NewPrinter(append(output.PrinterOptions(mode), output.WithWriter(opts.stdout))...)
	errOut := output.NewPrinter(append(output.PrinterOptions(mode), output.WithWriter(opts.stderr))...)

	registry := commands.NewRegistry()
	if err := registry.Add(builtin.NewEchoCommand(opts.stdout)); err != nil {
		return nil, err
	}

	runner := execution.NewProcessRunner(opts.stdout, opts.stderr)
	runner.Stdin = opts.stdin
	if cfg.CommandsFile != "" {
		cmds, err := manifest.Load(cfg.CommandsFile, runner)
		if err != nil {
			return nil, err
		}
		if err := manifest.Register(registry, cmds); err != nil {
			return nil, fmt.Errorf("failed to register commands from %s: %w", cfg.CommandsFile, err)
		}
	}

	reader := newReader(cfg, registry, opts)

	d := shell.New(cfg.Name,
		shell.WithRegistry(registry),
		shell.WithReader(reader),
		shell.WithOutput(out),
		shell.WithErrorOutput(errOut),
		shell.WithRunner(runner),
		shell.WithPrompt(cfg.Prompt),
	)
	if cfg.AllowExecution {
		d.EnableExecution()
	}
	if cfg.Help {
		if err := d.EnableHelp(); err != nil {
			return nil, err
		}
	}
	if cfg.Exit {
		if err := d.EnableExit(); err != nil {
			return nil, err
		}
	}

	logger.Debug("Shell ready", "name", cfg.Name, "session", d.SessionID(), "commands", registry.Len())
	return &app{dispatcher: d, errOut: errOut, reader: reader}, nil
}

// newReader uses readline on a terminal and a plain line reader otherwise.
func newReader(cfg config.Config, registry *commands.Registry, opts appOptions) shell.LineReader {
	if f, ok := opts.stdin.(*os.File); ok && opts.interactive && readline.IsTerminal(int(f.Fd())) {
		rl, err := shell.NewReadlineReader(shell.ReadlineConfig{
			HistoryFile: cfg.HistoryFile,
			Completer:   shell.NewCompleter(registry),
		})
		if err == nil {
			return rl
		}
		logger.Warn("Falling back to plain input", "error", err)
	}

	var promptOut io.Writer
	if opts.interactive {
		promptOut = opts.stdout
	}
	return shell.NewStreamReader(opts.stdin, promptOut)
}

// runScripts runs each file in turn and returns the process exit code. A
// failing line ends the batch with 1 and a non-zero exit code ends it with
// that code; "exit" alone only ends the current file.
func (a *app) runScripts(paths []string) int {
	for _, path := range paths {
		if err := a.dispatcher.RunScript(path); err != nil {
			a.errOut.Error(err.Error())
			return 1
		}
		if code := a.dispatcher.ExitCode(); code != 0 {
			return code
		}
	}
	return 0
}

// Close releases the line reader.
func (a *app) Close() {
	if err := a.reader.Close(); err != nil {
		logger.Debug("Closing reader failed", "error", err)
	}
}
