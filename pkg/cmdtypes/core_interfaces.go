// Package cmdtypes defines core architectural interfaces for the command engine.
// This file contains the interfaces commands and registries agree on.
package cmdtypes

// Command defines the interface that every dispatchable command implements.
// The usage string is the source of truth for the schema: Schema() always
// reflects the most recent usage assigned to the command.
type Command interface {
	Name() string
	Description() string
	LongDescription() []string
	Usage() string
	Schema() Schema
	HelpInfo() HelpInfo
	// Owner returns the registry currently holding the command, or nil when detached.
	Owner() Owner
	Execute(args Kwargs) error
}

// Owner is the view a command has of the registry that holds it. Commands never
// own their registry; they use it only to keep the name index in sync on rename.
type Owner interface {
	Rename(oldName, newName string) error
	Remove(name string) error
}
