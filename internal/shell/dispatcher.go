// Package shell provides the dispatch loop of cmdshell. A Dispatcher reads
// lines, resolves them against its command registry, binds their arguments
// and runs the matching command, falling back to external files when allowed.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"cmdshell/internal/binding"
	"cmdshell/internal/commands"
	"cmdshell/internal/commands/builtin"
	"cmdshell/internal/execution"
	"cmdshell/internal/logger"
	"cmdshell/internal/output"
	"cmdshell/internal/parser"
	"cmdshell/internal/suggest"
	"cmdshell/pkg/cmdtypes"
)

// DefaultPrompt is the prompt template of a new dispatcher.
const DefaultPrompt = "(%name) "

// Dispatcher routes input lines to the commands of its registry.
//
// A Dispatcher is driven from one goroutine. Stop only sets a flag that the
// main loop checks between lines, so the line being executed always finishes.
type Dispatcher struct {
	name           string
	prompt         string
	reader         LineReader
	out            *output.Printer
	errOut         *output.Printer
	registry       *commands.Registry
	runner         execution.Runner
	allowExecution bool
	exitCode       int
	running        bool
	sessionID      string
	log            *log.Logger

	help *builtin.HelpCommand
	exit *builtin.ExitCommand
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRegistry makes the dispatcher resolve commands in registry.
func WithRegistry(registry *commands.Registry) Option {
	return func(d *Dispatcher) { d.registry = registry }
}

// WithReader sets the line source of the main loop.
func WithReader(reader LineReader) Option {
	return func(d *Dispatcher) { d.reader = reader }
}

// WithOutput sets the printer for regular output such as help.
func WithOutput(p *output.Printer) Option {
	return func(d *Dispatcher) { d.out = p }
}

// WithErrorOutput sets the printer errors and warnings go to.
func WithErrorOutput(p *output.Printer) Option {
	return func(d *Dispatcher) { d.errOut = p }
}

// WithRunner sets the collaborator used to execute external files.
func WithRunner(runner execution.Runner) Option {
	return func(d *Dispatcher) { d.runner = runner }
}

// WithPrompt sets the prompt template.
func WithPrompt(prompt string) Option {
	return func(d *Dispatcher) { d.prompt = prompt }
}

// New creates a dispatcher named name. By default it reads standard input,
// prints to standard output and error, has an empty registry, and has
// external execution and the help and exit commands disabled.
func New(name string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		name:      name,
		prompt:    DefaultPrompt,
		sessionID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.registry == nil {
		d.registry = commands.NewRegistry()
	}
	if d.out == nil {
		d.out = output.NewPrinter(output.WithWriter(os.Stdout), output.PlainText())
	}
	if d.errOut == nil {
		d.errOut = output.NewPrinter(output.WithWriter(os.Stderr), output.PlainText())
	}
	if d.reader == nil {
		d.reader = NewStreamReader(os.Stdin, d.out.Writer())
	}
	if d.runner == nil {
		d.runner = execution.NewProcessRunner(d.out.Writer(), d.errOut.Writer())
	}

	d.log = logger.NewStyledLogger("Dispatcher").With("session", d.sessionID)
	d.help = builtin.NewHelpCommand(d)
	d.exit = builtin.NewExitCommand(d)

	return d
}

// Name returns the dispatcher name substituted into the prompt.
func (d *Dispatcher) Name() string { return d.name }

// SessionID returns the identifier attached to this dispatcher's log lines.
func (d *Dispatcher) SessionID() string { return d.sessionID }

// Registry returns the registry commands are resolved in.
func (d *Dispatcher) Registry() *commands.Registry { return d.registry }

// Add registers cmd with the dispatcher's registry.
func (d *Dispatcher) Add(cmd cmdtypes.Command) error { return d.registry.Add(cmd) }

// Execute parses line and dispatches it.
func (d *Dispatcher) Execute(line string) error {
	return d.ExecuteInput(parser.Parse(line))
}

// ExecuteInput dispatches an already tokenized line.
//
// An empty command does nothing. A registered command has its arguments bound
// and is executed; binding failures are returned and the command does not
// run. An unknown command is run as an external file when execution is
// enabled, and otherwise fails with a CommandNotFound error carrying the
// registered names within suggest.DefaultMaxDistance edits.
func (d *Dispatcher) ExecuteInput(in parser.Input) error {
	if in.IsEmpty() {
		return nil
	}

	if cmd, ok := d.registry.Get(in.Command); ok {
		res, err := binding.Bind(in, cmd.Schema())
		for _, w := range res.Warnings {
			d.log.Debug("Ignoring keyword", "command", in.Command, "argument", w.Argument)
			d.errOut.Warning(w.Error())
		}
		if err != nil {
			if cmdtypes.IsSchemaDefect(err) {
				d.log.Error("Invalid command schema", "command", in.Command, "error", err)
			}
			return err
		}
		d.log.Debug("Executing command", "command", in.Command, "args", res.Args)
		return cmd.Execute(res.Args)
	}

	if d.allowExecution {
		d.log.Debug("Executing external file", "command", in.Command, "args", in.Args)
		return d.runner.RunFile(context.Background(), in.Command, in.Args)
	}

	return cmdtypes.NewCommandNotFound(in.Command, d.registry.Similar(in.Command, suggest.DefaultMaxDistance))
}

// Mainloop reads and dispatches lines until Stop is called or input ends.
// Each iteration resets the exit code before prompting. Errors from a line are
// printed to the error output and never end the loop. At end of input the
// loop returns 0; after Stop it returns the exit code set during the last line.
func (d *Dispatcher) Mainloop() int {
	d.running = true
	defer func() { d.running = false }()

	d.log.Debug("Main loop started", "name", d.name)
	for d.running {
		d.ResetStatus()

		line, err := d.reader.ReadLine(d.Prompt())
		if err != nil {
			if !errors.Is(err, io.EOF) {
				d.errOut.Error(err.Error())
			}
			d.log.Debug("Input closed")
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := d.Execute(line); err != nil {
			d.errOut.Error(err.Error())
		}
	}

	d.log.Debug("Main loop stopped", "exit_code", d.exitCode)
	return d.exitCode
}

// Running reports whether the main loop is active.
func (d *Dispatcher) Running() bool { return d.running }

// Stop ends the main loop after the current line.
func (d *Dispatcher) Stop() { d.running = false }

// SetExitCode sets the code Mainloop returns once stopped.
func (d *Dispatcher) SetExitCode(code int) { d.exitCode = code }

// ExitCode returns the current exit code.
func (d *Dispatcher) ExitCode() int { return d.exitCode }

// ResetStatus restores the exit code to 0.
func (d *Dispatcher) ResetStatus() { d.exitCode = 0 }

// SetPrompt sets the prompt template. Every "%name" is replaced by the
// dispatcher name when the prompt is shown.
func (d *Dispatcher) SetPrompt(prompt string) { d.prompt = prompt }

// Prompt returns the prompt with the template expanded.
func (d *Dispatcher) Prompt() string {
	return strings.ReplaceAll(d.prompt, "%name", d.name)
}

// EnableExecution makes unknown commands run as external files.
func (d *Dispatcher) EnableExecution() { d.allowExecution = true }

// DisableExecution makes unknown commands fail with CommandNotFound.
func (d *Dispatcher) DisableExecution() { d.allowExecution = false }

// ExecutionEnabled reports whether external execution is enabled.
func (d *Dispatcher) ExecutionEnabled() bool { return d.allowExecution }

// EnableHelp registers the help command.
func (d *Dispatcher) EnableHelp() error { return d.registry.Add(d.help) }

// DisableHelp removes the help command if it is registered.
func (d *Dispatcher) DisableHelp() {
	if d.help.Owner() != nil {
		_ = d.registry.RemoveCommand(d.help)
	}
}

// EnableExit registers the exit command.
func (d *Dispatcher) EnableExit() error { return d.registry.Add(d.exit) }

// DisableExit removes the exit command if it is registered.
func (d *Dispatcher) DisableExit() {
	if d.exit.Owner() != nil {
		_ = d.registry.RemoveCommand(d.exit)
	}
}

// PrintHelp prints the usage and description of every registered command.
func (d *Dispatcher) PrintHelp() {
	infos := make([]cmdtypes.HelpInfo, 0, d.registry.Len())
	for _, cmd := range d.registry.GetAll() {
		infos = append(infos, cmd.HelpInfo())
	}
	d.out.Print(d.out.FormatCommandList(infos))
}

// PrintCommandHelp prints the detailed help of the command called name.
func (d *Dispatcher) PrintCommandHelp(name string) {
	cmd, ok := d.registry.Get(name)
	if !ok {
		d.out.Print(d.out.FormatNotFound(name))
		return
	}
	d.out.Print(d.out.FormatCommandHelp(cmd.HelpInfo()))
}
