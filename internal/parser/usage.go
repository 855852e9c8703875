package parser

import (
	"strings"

	"cmdshell/pkg/cmdtypes"
)

// ParseUsage derives a schema from a usage string such as "cp <src> <dst> [mode]".
//
// The first token names the command and is ignored. <name> declares a required
// parameter, [name] an optional one defaulting to "", and [args...] the
// catch-all. Parsing stops at the catch-all, so anything after it is dropped.
// The catch-all is always optional: <args...> is malformed.
//
// Invalid tokens (and duplicate names) never abort parsing: each one is
// reported as a KindMalformedUsage error and skipped, and the schema built from
// the remaining tokens is still returned.
func ParseUsage(usage string) (cmdtypes.Schema, []error) {
	var (
		schema cmdtypes.Schema
		diags  []error
	)

	tokens := strings.Fields(usage)
	if len(tokens) <= 1 {
		return schema, nil
	}

	seen := make(map[string]bool)
	for _, tok := range tokens[1:] {
		if tok == "["+cmdtypes.CatchAll+"]" || tok == cmdtypes.CatchAll {
			if seen[cmdtypes.CatchAll] {
				diags = append(diags, cmdtypes.NewMalformedUsage(usage, tok))
				break
			}
			appendOptional(&schema, cmdtypes.CatchAll)
			break
		}

		name, required, ok := unwrapToken(tok)
		if !ok || seen[name] || (required && name == cmdtypes.CatchAll) {
			diags = append(diags, cmdtypes.NewMalformedUsage(usage, tok))
			continue
		}
		seen[name] = true

		if required {
			schema.Required = append(schema.Required, cmdtypes.ParameterSpec{
				Name:     name,
				Required: true,
				Position: len(schema.Ordered),
			})
			schema.Ordered = append(schema.Ordered, name)
			continue
		}
		appendOptional(&schema, name)
	}

	return schema, diags
}

func appendOptional(schema *cmdtypes.Schema, name string) {
	empty := ""
	schema.Optional = append(schema.Optional, cmdtypes.ParameterSpec{
		Name:     name,
		Default:  &empty,
		Position: len(schema.Ordered),
	})
	schema.Ordered = append(schema.Ordered, name)
}

// unwrapToken strips <> or [] from tok. The interior must be non-empty.
func unwrapToken(tok string) (name string, required bool, ok bool) {
	if len(tok) < 3 {
		return "", false, false
	}
	first, last := tok[0], tok[len(tok)-1]
	switch {
	case first == '<' && last == '>':
		return tok[1 : len(tok)-1], true, true
	case first == '[' && last == ']':
		return tok[1 : len(tok)-1], false, true
	default:
		return "", false, false
	}
}
