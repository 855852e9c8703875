// Package builtin provides the commands every cmdshell dispatcher can offer:
// help, exit and echo. Commands that act on the shell reach it through the
// small interfaces declared here.
package builtin

import (
	"cmdshell/internal/commands"
	"cmdshell/pkg/cmdtypes"
)

// HelpPrinter prints help for the commands a shell knows about.
type HelpPrinter interface {
	PrintHelp()
	PrintCommandHelp(name string)
}

// HelpCommand implements the help command. Without an argument it lists every
// command; with one it prints that command's detailed help.
type HelpCommand struct {
	commands.BaseCommand
	printer HelpPrinter
}

// NewHelpCommand creates a help command printing through printer.
func NewHelpCommand(printer HelpPrinter) *HelpCommand {
	return &HelpCommand{
		BaseCommand: commands.NewBaseCommand(
			"help",
			"Prints this help message.",
			"Without an argument, lists every command with its usage.\nWith a command name, prints the usage, arguments and description of that command.",
			"help [command]",
		),
		printer: printer,
	}
}

// Execute implements cmdtypes.Command.
func (c *HelpCommand) Execute(args cmdtypes.Kwargs) error {
	if name := args["command"]; name != "" {
		c.printer.PrintCommandHelp(name)
		return nil
	}
	c.printer.PrintHelp()
	return nil
}
