package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdshell/pkg/cmdtypes"
)

func TestNewBaseCommand(t *testing.T) {
	b := NewBaseCommand("cp", "Copy a file", "Copies src to dst.\nMode is optional.", "cp <src> <dst> [mode]")

	assert.Equal(t, "cp", b.Name())
	assert.Equal(t, "Copy a file", b.Description())
	assert.Equal(t, []string{"Copies src to dst.", "Mode is optional."}, b.LongDescription())
	assert.Equal(t, "cp <src> <dst> [mode]", b.Usage())
	assert.Empty(t, b.UsageErrors())
	assert.Nil(t, b.Owner())

	schema := b.Schema()
	assert.Equal(t, []string{"src", "dst", "mode"}, schema.Ordered)
}

func TestNewBaseCommand_DefaultUsageIsName(t *testing.T) {
	b := NewBaseCommand("exit", "", "", "")
	assert.Equal(t, "exit", b.Usage())
	assert.Empty(t, b.Schema().Ordered)
	assert.Empty(t, b.LongDescription())
}

func TestBaseCommand_SetUsageSwapsSchema(t *testing.T) {
	b := NewBaseCommand("cp", "", "", "cp <src> <dst> [mode]")
	require.NoError(t, b.SetDefaultValue("mode", "fast"))

	diags := b.SetUsage("cp <from> [to]")
	assert.Empty(t, diags)

	schema := b.Schema()
	assert.Equal(t, []string{"from", "to"}, schema.Ordered)
	assert.Equal(t, cmdtypes.ArgUnknown, b.IsArgument("src"))
	assert.Equal(t, cmdtypes.ArgUnknown, b.IsArgument("mode"))

	_, ok := b.DefaultValue("mode")
	assert.False(t, ok, "defaults do not carry over to the new schema")
	v, ok := b.DefaultValue("to")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestBaseCommand_SetUsageReportsMalformedTokens(t *testing.T) {
	b := NewBaseCommand("cp", "", "", "cp <src>")

	diags := b.SetUsage("cp <src> dst")
	require.Len(t, diags, 1)
	assert.True(t, cmdtypes.IsKind(diags[0], cmdtypes.KindMalformedUsage))
	assert.Equal(t, diags, b.UsageErrors())
	assert.Equal(t, []string{"src"}, b.Schema().Ordered)
}

func TestBaseCommand_SchemaIsACopy(t *testing.T) {
	b := NewBaseCommand("cp", "", "", "cp <src> [mode]")

	schema := b.Schema()
	schema.Ordered[0] = "mutated"
	*schema.Optional[0].Default = "mutated"

	fresh := b.Schema()
	assert.Equal(t, "src", fresh.Ordered[0])
	assert.Equal(t, "", *fresh.Optional[0].Default)
}

func TestBaseCommand_DefaultValues(t *testing.T) {
	b := NewBaseCommand("cp", "", "", "cp <src> [mode]")

	require.NoError(t, b.SetDefaultValue("mode", "fast"))
	v, ok := b.DefaultValue("mode")
	assert.True(t, ok)
	assert.Equal(t, "fast", v)

	err := b.SetDefaultValue("src", "x")
	assert.Error(t, err, "required arguments cannot have defaults")
	err = b.SetDefaultValue("nope", "x")
	assert.Error(t, err)

	_, ok = b.DefaultValue("src")
	assert.False(t, ok)
}

func TestBaseCommand_IsArgument(t *testing.T) {
	b := NewBaseCommand("cp", "", "", "cp <src> [mode]")

	assert.Equal(t, cmdtypes.ArgRequired, b.IsArgument("src"))
	assert.Equal(t, cmdtypes.ArgOptional, b.IsArgument("mode"))
	assert.Equal(t, cmdtypes.ArgUnknown, b.IsArgument("dst"))
}

func TestBaseCommand_HelpInfo(t *testing.T) {
	b := NewBaseCommand("cp", "Copy", "Long text", "cp <src> [mode]")
	require.NoError(t, b.SetDefaultValue("mode", "fast"))

	info := b.HelpInfo()
	assert.Equal(t, "cp", info.Command)
	assert.Equal(t, "Copy", info.Description)
	assert.Equal(t, []string{"Long text"}, info.LongDescription)
	assert.Equal(t, []cmdtypes.HelpOption{
		{Name: "src", Required: true},
		{Name: "mode", Default: "fast"},
	}, info.Options)
}

func TestBaseCommand_LongDescriptionSetters(t *testing.T) {
	b := NewBaseCommand("cp", "", "", "cp")

	b.SetLongDescription("one\ntwo")
	assert.Equal(t, []string{"one", "two"}, b.LongDescription())

	lines := []string{"a", "b"}
	b.SetLongDescriptionLines(lines)
	lines[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, b.LongDescription())

	b.SetLongDescription("")
	assert.Empty(t, b.LongDescription())

	b.SetDescription("short")
	assert.Equal(t, "short", b.Description())
}

func TestFuncCommand_Execute(t *testing.T) {
	var got cmdtypes.Kwargs
	cmd := NewFuncCommand("echo", "Echo", "echo [args...]", func(args cmdtypes.Kwargs) error {
		got = args
		return errors.New("boom")
	})

	err := cmd.Execute(cmdtypes.Kwargs{"args...": "hi"})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, cmdtypes.Kwargs{"args...": "hi"}, got)

	assert.NoError(t, NewFuncCommand("noop", "", "noop", nil).Execute(nil))
}
