// Package commands provides command registration and lookup for cmdshell.
// It manages registries of commands and keeps each command's back-reference
// to its owning registry consistent with the registry's name index.
package commands

import (
	"fmt"
	"sort"
	"sync"

	"cmdshell/internal/suggest"
	"cmdshell/pkg/cmdtypes"
)

// attachable is implemented by every type embedding BaseCommand.
type attachable interface {
	base() *BaseCommand
}

// Registry manages command registration and lookup.
//
// A command's Owner is non-nil iff the registry holding it indexes it under its
// current name. Removing a command detaches it and hands it back to the caller.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]cmdtypes.Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]cmdtypes.Command),
	}
}

// Add attaches cmd to the registry. Adding a command already held by this
// registry is a no-op. It fails when the name is empty or taken, when the
// command belongs to another registry, or when it does not embed BaseCommand.
func (r *Registry) Add(cmd cmdtypes.Command) error {
	a, ok := cmd.(attachable)
	if !ok {
		return fmt.Errorf("command %T does not embed commands.BaseCommand", cmd)
	}
	b := a.base()

	r.mu.Lock()
	defer r.mu.Unlock()

	if b.owner == r {
		return nil
	}
	if b.owner != nil {
		return fmt.Errorf("command %s is already attached to another registry", b.name)
	}
	if b.name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.commands[b.name]; exists {
		return fmt.Errorf("command %s already registered", b.name)
	}

	r.commands[b.name] = cmd
	b.owner = r
	return nil
}

// Remove detaches the command registered under name.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd, exists := r.commands[name]
	if !exists {
		return fmt.Errorf("command %s not registered", name)
	}
	delete(r.commands, name)
	if a, ok := cmd.(attachable); ok {
		a.base().owner = nil
	}
	return nil
}

// RemoveCommand detaches cmd if this registry holds it.
func (r *Registry) RemoveCommand(cmd cmdtypes.Command) error {
	a, ok := cmd.(attachable)
	if !ok || a.base().owner != r {
		return fmt.Errorf("command %s is not attached to this registry", cmd.Name())
	}
	return r.Remove(cmd.Name())
}

// Rename re-indexes the command registered under oldName as newName.
func (r *Registry) Rename(oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd, exists := r.commands[oldName]
	if !exists {
		return fmt.Errorf("command %s not registered", oldName)
	}
	if oldName == newName {
		return nil
	}
	if newName == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, taken := r.commands[newName]; taken {
		return fmt.Errorf("command %s already registered", newName)
	}

	delete(r.commands, oldName)
	cmd.(attachable).base().assignName(newName)
	r.commands[newName] = cmd
	return nil
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (cmdtypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// IsValidCommand checks if a command exists in the registry.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns all registered commands sorted by name.
// The returned slice is a copy and can be safely modified.
func (r *Registry) GetAll() []cmdtypes.Command {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]cmdtypes.Command, 0, len(names))
	for _, name := range names {
		if cmd, ok := r.commands[name]; ok {
			all = append(all, cmd)
		}
	}
	return all
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Similar returns the registered names within maxDistance edits of name, in
// sorted name order.
func (r *Registry) Similar(name string, maxDistance int) []string {
	return suggest.Similar(name, r.Names(), maxDistance)
}

// Clear detaches every command.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, cmd := range r.commands {
		if a, ok := cmd.(attachable); ok {
			a.base().owner = nil
		}
		delete(r.commands, name)
	}
}
