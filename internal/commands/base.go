package commands

import (
	"fmt"
	"strings"

	"cmdshell/internal/logger"
	"cmdshell/internal/parser"
	"cmdshell/pkg/cmdtypes"
)

// BaseCommand carries the metadata and argument schema every command needs.
// Concrete commands embed it and implement Execute.
//
// The schema is always derived from the usage string. SetUsage builds a fresh
// schema and swaps it in whole, so a half-parsed schema is never observable.
type BaseCommand struct {
	name            string
	description     string
	longDescription []string
	usage           string
	schema          cmdtypes.Schema
	usageErrors     []error

	// owner is a non-owning back-reference, set only by Registry.
	owner *Registry
}

// NewBaseCommand builds the embeddable part of a command and parses usage.
// longDescription is split on newlines.
func NewBaseCommand(name, description, longDescription, usage string) BaseCommand {
	b := BaseCommand{
		name:        name,
		description: description,
	}
	if longDescription != "" {
		b.longDescription = strings.Split(longDescription, "\n")
	}
	if usage == "" {
		usage = name
	}
	b.applyUsage(usage)
	return b
}

// Name returns the command name used for registration and lookup.
func (b *BaseCommand) Name() string { return b.name }

// Description returns the one-line description shown in the command list.
func (b *BaseCommand) Description() string { return b.description }

// LongDescription returns the detailed help lines.
func (b *BaseCommand) LongDescription() []string {
	out := make([]string, len(b.longDescription))
	copy(out, b.longDescription)
	return out
}

// Usage returns the usage string the schema was derived from.
func (b *BaseCommand) Usage() string { return b.usage }

// Schema returns a copy of the current argument schema.
func (b *BaseCommand) Schema() cmdtypes.Schema { return b.schema.Clone() }

// UsageErrors returns the diagnostics reported while parsing the current usage string.
func (b *BaseCommand) UsageErrors() []error { return b.usageErrors }

// Owner returns the registry holding the command, or nil when detached.
func (b *BaseCommand) Owner() cmdtypes.Owner {
	if b.owner == nil {
		return nil
	}
	return b.owner
}

// SetName renames the command. When attached, the owning registry re-indexes
// it under the new name; the rename fails if that name is taken.
func (b *BaseCommand) SetName(name string) error {
	if b.owner == nil {
		b.name = name
		return nil
	}
	return b.owner.Rename(b.name, name)
}

// SetDescription replaces the one-line description.
func (b *BaseCommand) SetDescription(description string) { b.description = description }

// SetLongDescription replaces the detailed help, splitting it on newlines.
func (b *BaseCommand) SetLongDescription(text string) {
	if text == "" {
		b.longDescription = nil
		return
	}
	b.longDescription = strings.Split(text, "\n")
}

// SetLongDescriptionLines replaces the detailed help with lines.
func (b *BaseCommand) SetLongDescriptionLines(lines []string) {
	b.longDescription = append([]string(nil), lines...)
}

// SetUsage replaces the usage string and re-derives the schema from it.
// Defaults set through SetDefaultValue do not survive the swap.
func (b *BaseCommand) SetUsage(usage string) []error {
	b.applyUsage(usage)
	return b.usageErrors
}

// SetDefaultValue records the value an unfilled optional argument falls back to.
func (b *BaseCommand) SetDefaultValue(arg, value string) error {
	schema, ok := b.schema.WithDefault(arg, value)
	if !ok {
		return fmt.Errorf("command '%s' has no optional argument '%s'", b.name, arg)
	}
	b.schema = schema
	return nil
}

// DefaultValue returns the default recorded for an optional argument.
func (b *BaseCommand) DefaultValue(arg string) (string, bool) {
	p, ok := b.schema.Lookup(arg)
	if !ok || !p.HasDefault() {
		return "", false
	}
	return *p.Default, true
}

// IsArgument classifies arg against the schema.
func (b *BaseCommand) IsArgument(arg string) cmdtypes.ArgumentKind {
	return b.schema.Kind(arg)
}

// HelpInfo returns structured help information built from the command metadata.
func (b *BaseCommand) HelpInfo() cmdtypes.HelpInfo {
	info := cmdtypes.HelpInfo{
		Command:         b.name,
		Description:     b.description,
		LongDescription: b.LongDescription(),
		Usage:           b.usage,
	}
	for _, name := range b.schema.Ordered {
		p, _ := b.schema.Lookup(name)
		opt := cmdtypes.HelpOption{Name: p.Name, Required: p.Required}
		if p.HasDefault() {
			opt.Default = *p.Default
		}
		info.Options = append(info.Options, opt)
	}
	return info
}

func (b *BaseCommand) applyUsage(usage string) {
	schema, diags := parser.ParseUsage(usage)
	for _, d := range diags {
		logger.Warn("Invalid usage string", "command", b.name, "error", d)
	}
	b.usage = usage
	b.schema = schema
	b.usageErrors = diags
}

// The registry-facing hooks below are unexported so only Registry can move a
// command between the attached and detached states.

func (b *BaseCommand) base() *BaseCommand { return b }

func (b *BaseCommand) assignName(name string) { b.name = name }

// HandlerFunc is the signature of a function-backed command handler.
type HandlerFunc func(args cmdtypes.Kwargs) error

// FuncCommand is a command whose behaviour is a plain function.
type FuncCommand struct {
	BaseCommand
	handler HandlerFunc
}

// NewFuncCommand creates a function-backed command.
func NewFuncCommand(name, description, usage string, handler HandlerFunc) *FuncCommand {
	return &FuncCommand{
		BaseCommand: NewBaseCommand(name, description, "", usage),
		handler:     handler,
	}
}

// Execute runs the handler with the bound arguments.
func (c *FuncCommand) Execute(args cmdtypes.Kwargs) error {
	if c.handler == nil {
		return nil
	}
	return c.handler(args)
}
