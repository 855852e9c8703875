package shell

import (
	"strings"

	"cmdshell/internal/commands"
	"cmdshell/pkg/cmdtypes"
)

// Completer completes command names in the first word of a line and
// "name=" keywords of the command's arguments after it. It implements
// readline.AutoCompleter.
type Completer struct {
	registry *commands.Registry
}

// NewCompleter creates a completer over the commands of registry.
func NewCompleter(registry *commands.Registry) *Completer {
	return &Completer{registry: registry}
}

// Do implements readline.AutoCompleter. It returns the suffixes that complete
// the word under the cursor and the length of that word.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	before := string(line[:pos])

	wordStart := strings.LastIndexAny(before, " \t") + 1
	current := before[wordStart:]
	fields := strings.Fields(before[:wordStart])

	var candidates []string
	if len(fields) == 0 {
		candidates = c.registry.Names()
	} else if cmd, ok := c.registry.Get(fields[0]); ok && !strings.Contains(current, "=") {
		candidates = keywordCandidates(cmd.Schema())
	}

	var suggestions [][]rune
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, current) {
			suggestions = append(suggestions, []rune(strings.TrimPrefix(candidate, current)))
		}
	}
	return suggestions, len([]rune(current))
}

func keywordCandidates(schema cmdtypes.Schema) []string {
	out := make([]string, 0, len(schema.Ordered))
	for _, name := range schema.Ordered {
		if name == cmdtypes.CatchAll {
			continue
		}
		out = append(out, name+"=")
	}
	return out
}
