// Package cmdtypes defines command system types for the command engine.
// This file contains the argument schema produced by usage parsing and consumed
// by the binder, plus the structured help information rendered by the help command.
package cmdtypes

// CatchAll is the name of the parameter declared by the `[args...]` usage token.
// It swallows every positional token left over from its position onward.
const CatchAll = "args..."

// Kwargs contains the final, bound arguments passed to a command handler.
type Kwargs map[string]string

// ArgumentKind classifies a name against a schema.
type ArgumentKind int

const (
	// ArgUnknown means the schema does not declare the name.
	ArgUnknown ArgumentKind = iota
	// ArgRequired means the name is declared as <name>.
	ArgRequired
	// ArgOptional means the name is declared as [name].
	ArgOptional
)

// ParameterSpec is one declared parameter of a command.
type ParameterSpec struct {
	Name     string
	Required bool
	// Default is only ever set on optional parameters.
	Default  *string
	Position int
}

// HasDefault reports whether a default value was recorded for the parameter.
func (p ParameterSpec) HasDefault() bool {
	return p.Default != nil
}

// Schema is the argument schema of a command.
//
// Ordered is the name-only projection of the parameters in usage-string order,
// interleaving required and optional parameters exactly as written.
type Schema struct {
	Required []ParameterSpec
	Optional []ParameterSpec
	Ordered  []string
}

// Capacity returns the maximum number of arguments the schema accepts, or -1
// when a catch-all parameter makes it unbounded.
func (s Schema) Capacity() int {
	if s.HasCatchAll() {
		return -1
	}
	return len(s.Ordered)
}

// HasCatchAll reports whether the schema ends with the optional catch-all
// parameter. A required parameter named like the catch-all binds one token.
func (s Schema) HasCatchAll() bool {
	n := len(s.Ordered)
	return n > 0 && s.Ordered[n-1] == CatchAll && s.Kind(CatchAll) == ArgOptional
}

// Kind classifies name as required, optional or unknown.
func (s Schema) Kind(name string) ArgumentKind {
	for _, p := range s.Required {
		if p.Name == name {
			return ArgRequired
		}
	}
	for _, p := range s.Optional {
		if p.Name == name {
			return ArgOptional
		}
	}
	return ArgUnknown
}

// Lookup returns the parameter declared under name.
func (s Schema) Lookup(name string) (ParameterSpec, bool) {
	for _, p := range s.Required {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range s.Optional {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

// Clone returns a deep copy of the schema. Schemas handed out by commands are
// clones so callers can never mutate the live one.
func (s Schema) Clone() Schema {
	out := Schema{
		Required: make([]ParameterSpec, len(s.Required)),
		Optional: make([]ParameterSpec, len(s.Optional)),
		Ordered:  make([]string, len(s.Ordered)),
	}
	copy(out.Required, s.Required)
	copy(out.Ordered, s.Ordered)
	for i, p := range s.Optional {
		if p.Default != nil {
			v := *p.Default
			p.Default = &v
		}
		out.Optional[i] = p
	}
	return out
}

// WithDefault returns a copy of the schema where the optional parameter name
// defaults to value. It returns false if name is not an optional parameter.
func (s Schema) WithDefault(name, value string) (Schema, bool) {
	out := s.Clone()
	for i := range out.Optional {
		if out.Optional[i].Name == name {
			v := value
			out.Optional[i].Default = &v
			return out, true
		}
	}
	return s, false
}

// WithoutDefault returns a copy of the schema where the optional parameter name
// has no recorded default.
func (s Schema) WithoutDefault(name string) (Schema, bool) {
	out := s.Clone()
	for i := range out.Optional {
		if out.Optional[i].Name == name {
			out.Optional[i].Default = nil
			return out, true
		}
	}
	return s, false
}

// HelpInfo represents structured help information for a command.
type HelpInfo struct {
	Command         string       `json:"command"`
	Description     string       `json:"description"`
	LongDescription []string     `json:"long_description,omitempty"`
	Usage           string       `json:"usage"`
	Options         []HelpOption `json:"options,omitempty"`
}

// HelpOption represents a declared parameter in help output.
type HelpOption struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
}
