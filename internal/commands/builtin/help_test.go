package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdshell/internal/binding"
	"cmdshell/internal/parser"
	"cmdshell/pkg/cmdtypes"
)

type fakeHelpPrinter struct {
	listed    int
	requested []string
}

func (f *fakeHelpPrinter) PrintHelp() { f.listed++ }
func (f *fakeHelpPrinter) PrintCommandHelp(name string) { f.requested = append(f.requested, name) }

// run binds line against cmd's schema and executes it, as the dispatcher does.
func run(t *testing.T, cmd cmdtypes.Command, line string) error {
	t.Helper()
	res, err := binding.Bind(parser.Parse(line), cmd.Schema())
	require.NoError(t, err)
	return cmd.Execute(res.Args)
}

func TestHelpCommand_Metadata(t *testing.T) {
	cmd := NewHelpCommand(&fakeHelpPrinter{})

	assert.Equal(t, "help", cmd.Name())
	assert.Equal(t, "help [command]", cmd.Usage())
	assert.Equal(t, "Prints this help message.", cmd.Description())
	assert.Equal(t, cmdtypes.ArgOptional, cmd.IsArgument("command"))
	assert.Len(t, cmd.LongDescription(), 2)
}

func TestHelpCommand_Execute(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		listed    int
		requested []string
	}{
		{name: "no argument lists commands", line: "help", listed: 1},
		{name: "positional name", line: "help exit", requested: []string{"exit"}},
		{name: "keyword name", line: "help command=echo", requested: []string{"echo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printer := &fakeHelpPrinter{}
			require.NoError(t, run(t, NewHelpCommand(printer), tt.line))
			assert.Equal(t, tt.listed, printer.listed)
			assert.Equal(t, tt.requested, printer.requested)
		})
	}
}

func TestHelpCommand_TooManyArguments(t *testing.T) {
	cmd := NewHelpCommand(&fakeHelpPrinter{})
	_, err := binding.Bind(parser.Parse("help a b"), cmd.Schema())
	assert.True(t, cmdtypes.IsKind(err, cmdtypes.KindArgumentOverflow))
}
