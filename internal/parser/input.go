// Package parser turns raw text into the values the dispatcher works with:
// input lines become an Input and usage strings become a cmdtypes.Schema.
package parser

import (
	"bufio"
	"errors"
	"io"
	"maps"
	"slices"
	"strings"
)

// Input is one tokenized command line. It is never modified after Parse returns.
type Input struct {
	// Command is the first token, case preserved.
	Command string
	// Args are the positional tokens in order.
	Args []string
	// Kwargs are the key=value tokens, split on the first '='.
	Kwargs map[string]string
	// Raw is every token after the command name joined by single spaces, kept
	// so the line can be handed to a sub-interpreter untouched.
	Raw string
}

// Parse tokenizes line. Runs of whitespace are collapsed, so repeated spaces
// never yield empty positional tokens. A token is a keyword iff it contains '='.
func Parse(line string) Input {
	in := Input{Kwargs: make(map[string]string)}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return in
	}

	in.Command = tokens[0]
	in.Raw = strings.Join(tokens[1:], " ")

	for _, tok := range tokens[1:] {
		if key, value, ok := strings.Cut(tok, "="); ok {
			in.Kwargs[key] = value
			continue
		}
		in.Args = append(in.Args, tok)
	}

	return in
}

// ReadLine reads exactly one line from r with its terminator (\n or \r\n)
// dropped. Lines have no length limit. End of input is reported as io.EOF only
// when no characters were read, so a final unterminated line is still returned
// and an empty line yields "" with a nil error.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadInput reads one line from r with ReadLine and parses it.
func ReadInput(r *bufio.Reader) (Input, error) {
	line, err := ReadLine(r)
	if err != nil {
		return Input{}, err
	}
	return Parse(line), nil
}

// IsEmpty reports whether the line carried no command.
func (in Input) IsEmpty() bool {
	return in.Command == ""
}

// Arg returns the i-th positional argument.
func (in Input) Arg(i int) (string, bool) {
	if i < 0 || i >= len(in.Args) {
		return "", false
	}
	return in.Args[i], true
}

// Kwarg returns the keyword argument stored under key.
func (in Input) Kwarg(key string) (string, bool) {
	v, ok := in.Kwargs[key]
	return v, ok
}

// ArgCount returns the number of positional arguments.
func (in Input) ArgCount() int { return len(in.Args) }

// KwargCount returns the number of keyword arguments.
func (in Input) KwargCount() int { return len(in.Kwargs) }

// Equal compares command, positionals and keywords. Raw is derived and ignored.
func (in Input) Equal(other Input) bool {
	return in.Command == other.Command &&
		slices.Equal(in.Args, other.Args) &&
		maps.Equal(in.Kwargs, other.Kwargs)
}

// String re-serialises the input: command, positionals, then keywords sorted by key.
func (in Input) String() string {
	parts := make([]string, 0, 1+len(in.Args)+len(in.Kwargs))
	if in.Command != "" {
		parts = append(parts, in.Command)
	}
	parts = append(parts, in.Args...)
	for _, k := range slices.Sorted(maps.Keys(in.Kwargs)) {
		parts = append(parts, k+"="+in.Kwargs[k])
	}
	return strings.Join(parts, " ")
}
