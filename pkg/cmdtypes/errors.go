package cmdtypes

import (
	"errors"
	"fmt"
	"strings"
)

// ExitRestart is the exit code a host uses to ask its supervisor for a restart.
const ExitRestart = 82

// ErrorKind discriminates every failure the command engine reports.
type ErrorKind int

const (
	// KindUnknownKeyword is a warning: a keyword the schema does not declare was dropped.
	KindUnknownKeyword ErrorKind = iota
	// KindMissingRequired means a required argument received no value.
	KindMissingRequired
	// KindMissingDefault means an optional argument was left unbound and has no default.
	KindMissingDefault
	// KindArgumentOverflow means more arguments were given than the schema declares.
	KindArgumentOverflow
	// KindCommandNotFound means no registered command matches the input.
	KindCommandNotFound
	// KindExternalNotFound means the external fallback path does not exist.
	KindExternalNotFound
	// KindExternalNotFile means the external fallback path is not a regular file.
	KindExternalNotFile
	// KindExternalNonZeroExit means the external program exited with a non-zero status.
	KindExternalNonZeroExit
	// KindMalformedUsage means a usage-string token was not valid grammar.
	KindMalformedUsage
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnknownKeyword:
		return "unknown_keyword"
	case KindMissingRequired:
		return "missing_required"
	case KindMissingDefault:
		return "missing_default"
	case KindArgumentOverflow:
		return "argument_overflow"
	case KindCommandNotFound:
		return "command_not_found"
	case KindExternalNotFound:
		return "external_not_found"
	case KindExternalNotFile:
		return "external_not_file"
	case KindExternalNonZeroExit:
		return "external_non_zero_exit"
	case KindMalformedUsage:
		return "malformed_usage"
	default:
		return "unknown"
	}
}

// IsSchemaDefect reports whether the kind points at a badly authored command
// rather than at bad user input.
func (k ErrorKind) IsSchemaDefect() bool {
	return k == KindMissingDefault || k == KindMalformedUsage
}

// CommandError is the single error type of the engine. Only the fields relevant
// to Kind are populated.
type CommandError struct {
	Kind        ErrorKind
	Command     string
	Argument    string
	Given       int
	Capacity    int
	Suggestions []string
	Path        string
	Usage       string
	ExitCode    int
	Err         error
}

// Error implements error.
func (e *CommandError) Error() string {
	switch e.Kind {
	case KindUnknownKeyword:
		return fmt.Sprintf("command '%s' does not have argument '%s'; ignoring it", e.Command, e.Argument)
	case KindMissingRequired:
		return fmt.Sprintf("command '%s' required argument '%s' is missing", e.Command, e.Argument)
	case KindMissingDefault:
		return fmt.Sprintf("command '%s' argument '%s' does not have a default value", e.Command, e.Argument)
	case KindArgumentOverflow:
		return fmt.Sprintf("command '%s' has too many arguments: it can handle %d arguments, but %d were given",
			e.Command, e.Capacity, e.Given)
	case KindCommandNotFound:
		msg := fmt.Sprintf("command '%s' not found", e.Command)
		if len(e.Suggestions) > 0 {
			msg += fmt.Sprintf("; did you mean `%s`?", e.Suggestions[0])
		}
		return msg
	case KindExternalNotFound:
		return fmt.Sprintf("the file '%s' does not exist", e.Path)
	case KindExternalNotFile:
		return fmt.Sprintf("the file '%s' is not a regular file", e.Path)
	case KindExternalNonZeroExit:
		return fmt.Sprintf("the file '%s' returned exit code %d", e.Path, e.ExitCode)
	case KindMalformedUsage:
		return fmt.Sprintf("invalid usage string %q: unexpected token %q", e.Usage, e.Argument)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "command error"
	}
}

// Unwrap returns the underlying cause, if any.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err (or anything it wraps) is a CommandError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// IsSchemaDefect reports whether err is a CommandError whose kind points at a
// broken command schema rather than bad user input.
func IsSchemaDefect(err error) bool {
	k, ok := KindOf(err)
	return ok && k.IsSchemaDefect()
}

// KindOf returns the kind of the first CommandError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// NewUnknownKeyword builds the warning emitted when a keyword is not declared.
func NewUnknownKeyword(command, key string) *CommandError {
	return &CommandError{Kind: KindUnknownKeyword, Command: command, Argument: key}
}

// NewMissingRequired builds a missing required argument error.
func NewMissingRequired(command, name string) *CommandError {
	return &CommandError{Kind: KindMissingRequired, Command: command, Argument: name}
}

// NewMissingDefault builds the schema-defect error for an optional without default.
func NewMissingDefault(command, name string) *CommandError {
	return &CommandError{Kind: KindMissingDefault, Command: command, Argument: name}
}

// NewArgumentOverflow builds an argument count overflow error.
func NewArgumentOverflow(command string, given, capacity int) *CommandError {
	return &CommandError{Kind: KindArgumentOverflow, Command: command, Given: given, Capacity: capacity}
}

// NewCommandNotFound builds a lookup failure carrying the fuzzy suggestions.
func NewCommandNotFound(command string, suggestions []string) *CommandError {
	return &CommandError{Kind: KindCommandNotFound, Command: command, Suggestions: suggestions}
}

// NewMalformedUsage builds the diagnostic for an invalid usage token.
func NewMalformedUsage(usage, token string) *CommandError {
	return &CommandError{Kind: KindMalformedUsage, Usage: usage, Argument: strings.TrimSpace(token)}
}
