package builtin

import (
	"fmt"
	"strconv"

	"cmdshell/internal/commands"
	"cmdshell/pkg/cmdtypes"
)

// Stopper is the part of a shell the exit command controls.
type Stopper interface {
	Stop()
	SetExitCode(code int)
}

// ExitCommand implements the exit command. It stops the main loop after the
// current line; the loop then returns the given exit code.
type ExitCommand struct {
	commands.BaseCommand
	shell Stopper
}

// NewExitCommand creates an exit command stopping shell.
func NewExitCommand(shell Stopper) *ExitCommand {
	c := &ExitCommand{
		BaseCommand: commands.NewBaseCommand(
			"exit",
			"Exits the shell.",
			"Stops the shell after the current line.\nThe optional code becomes the exit status; 'restart' requests a restart.",
			"exit [code]",
		),
		shell: shell,
	}
	_ = c.SetDefaultValue("code", "0")
	return c
}

// Execute implements cmdtypes.Command.
func (c *ExitCommand) Execute(args cmdtypes.Kwargs) error {
	code, err := parseExitCode(args["code"])
	if err != nil {
		return err
	}
	c.shell.SetExitCode(code)
	c.shell.Stop()
	return nil
}

func parseExitCode(value string) (int, error) {
	switch value {
	case "", "0":
		return 0, nil
	case "restart":
		return cmdtypes.ExitRestart, nil
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("exit: invalid exit code %q", value)
	}
	return code, nil
}
