package builtin

import (
	"fmt"
	"io"

	"cmdshell/internal/commands"
	"cmdshell/pkg/cmdtypes"
)

// EchoCommand writes its arguments, joined by single spaces, followed by a newline.
type EchoCommand struct {
	commands.BaseCommand
	out io.Writer
}

// NewEchoCommand creates an echo command writing to out.
func NewEchoCommand(out io.Writer) *EchoCommand {
	return &EchoCommand{
		BaseCommand: commands.NewBaseCommand("echo", "Prints its arguments.", "", "echo [args...]"),
		out:         out,
	}
}

// Execute implements cmdtypes.Command.
func (c *EchoCommand) Execute(args cmdtypes.Kwargs) error {
	_, err := fmt.Fprintln(c.out, args[cmdtypes.CatchAll])
	return err
}
