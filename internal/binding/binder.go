// Package binding reconciles a parsed input line against a command's argument
// schema and produces the final argument map handed to the command handler.
package binding

import (
	"maps"
	"slices"
	"strings"

	"cmdshell/internal/parser"
	"cmdshell/pkg/cmdtypes"
)

// Result carries the outcome of a bind. Warnings are filled in even when Bind
// fails, so callers can report dropped keywords alongside the error.
type Result struct {
	Args     cmdtypes.Kwargs
	Warnings []*cmdtypes.CommandError
}

// Bind maps the positional and keyword tokens of in onto schema.
//
// Keywords are applied first; unknown keywords only produce warnings. Missing
// required parameters then take positional tokens in order, and missing
// optional parameters continue from the same positional index. The catch-all
// parameter takes every positional token left, joined by spaces. Optional
// parameters still unbound fall back to their defaults. The argument count is
// validated last, after all binding has run.
//
// The first failure wins, in this order: missing required argument, missing
// default, argument overflow.
func Bind(in parser.Input, schema cmdtypes.Schema) (Result, error) {
	var res Result

	missingRequired := paramNames(schema.Required)
	missingOptional := paramNames(schema.Optional)
	bound := make(cmdtypes.Kwargs, len(schema.Ordered))

	for _, key := range slices.Sorted(maps.Keys(in.Kwargs)) {
		switch {
		case slices.Contains(missingRequired, key):
			bound[key] = in.Kwargs[key]
			missingRequired = remove(missingRequired, key)
		case slices.Contains(missingOptional, key):
			bound[key] = in.Kwargs[key]
			missingOptional = remove(missingOptional, key)
		default:
			res.Warnings = append(res.Warnings, cmdtypes.NewUnknownKeyword(in.Command, key))
		}
	}

	next := 0
	for _, name := range missingRequired {
		if next >= len(in.Args) {
			return res, cmdtypes.NewMissingRequired(in.Command, name)
		}
		bound[name] = in.Args[next]
		next++
	}

	for _, name := range missingOptional {
		if next >= len(in.Args) {
			break
		}
		if name == cmdtypes.CatchAll {
			bound[name] = strings.Join(in.Args[next:], " ")
			next = len(in.Args)
			break
		}
		bound[name] = in.Args[next]
		next++
	}

	for _, p := range schema.Optional {
		if _, ok := bound[p.Name]; ok {
			continue
		}
		if !p.HasDefault() {
			return res, cmdtypes.NewMissingDefault(in.Command, p.Name)
		}
		bound[p.Name] = *p.Default
	}

	if capacity := schema.Capacity(); capacity >= 0 {
		given := len(in.Args) + len(in.Kwargs)
		if given > capacity {
			return res, cmdtypes.NewArgumentOverflow(in.Command, given, capacity)
		}
	}

	res.Args = bound
	return res, nil
}

func paramNames(specs []cmdtypes.ParameterSpec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Name
	}
	return out
}

func remove(list []string, name string) []string {
	return slices.DeleteFunc(list, func(s string) bool { return s == name })
}
