// Package cmdtypes defines the core interfaces and data structures shared by the
// command engine.
//
// The package is organized into the following files:
//
// ## Core Interfaces (core_interfaces.go)
//
//   - Command: a named handler owning one argument schema
//   - Owner: the non-owning back-reference a command keeps to its registry
//
// ## Command System Types (command_types.go)
//
//   - Kwargs: the bound argument map handed to a handler
//   - ParameterSpec, Schema: the argument schema derived from a usage string
//   - HelpInfo: structured help data for rendering
//
// ## Errors (errors.go)
//
//   - CommandError: one error type carrying an ErrorKind discriminant for every
//     failure the engine can report
package cmdtypes
