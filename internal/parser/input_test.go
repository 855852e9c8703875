package parser

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedCmd    string
		expectedArgs   []string
		expectedKwargs map[string]string
		expectedRaw    string
	}{
		{
			name:           "command only",
			input:          "help",
			expectedCmd:    "help",
			expectedKwargs: map[string]string{},
		},
		{
			name:           "positional arguments keep their order",
			input:          "cp a.txt b.txt",
			expectedCmd:    "cp",
			expectedArgs:   []string{"a.txt", "b.txt"},
			expectedKwargs: map[string]string{},
			expectedRaw:    "a.txt b.txt",
		},
		{
			name:           "keyword split on first equals only",
			input:          "cmd key=a=b val",
			expectedCmd:    "cmd",
			expectedArgs:   []string{"val"},
			expectedKwargs: map[string]string{"key": "a=b"},
			expectedRaw:    "key=a=b val",
		},
		{
			name:           "empty keyword value",
			input:          "set name=",
			expectedCmd:    "set",
			expectedKwargs: map[string]string{"name": ""},
			expectedRaw:    "name=",
		},
		{
			name:           "last duplicate keyword wins",
			input:          "set x=1 x=2",
			expectedCmd:    "set",
			expectedKwargs: map[string]string{"x": "2"},
			expectedRaw:    "x=1 x=2",
		},
		{
			name:           "runs of whitespace are collapsed",
			input:          "cp   a    b  ",
			expectedCmd:    "cp",
			expectedArgs:   []string{"a", "b"},
			expectedKwargs: map[string]string{},
			expectedRaw:    "a b",
		},
		{
			name:           "command case is preserved",
			input:          "Echo Hi",
			expectedCmd:    "Echo",
			expectedArgs:   []string{"Hi"},
			expectedKwargs: map[string]string{},
			expectedRaw:    "Hi",
		},
		{
			name:           "empty line",
			input:          "",
			expectedKwargs: map[string]string{},
		},
		{
			name:           "blank line",
			input:          "   \t ",
			expectedKwargs: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Parse(tt.input)

			assert.Equal(t, tt.expectedCmd, in.Command)
			assert.Equal(t, tt.expectedArgs, in.Args)
			assert.Equal(t, tt.expectedKwargs, in.Kwargs)
			assert.Equal(t, tt.expectedRaw, in.Raw)
		})
	}
}

func TestParse_EmptyLineIsEmptyInput(t *testing.T) {
	assert.True(t, Parse("").IsEmpty())
	assert.False(t, Parse("x").IsEmpty())
}

func TestReadInput(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("cp a b\r\n\nexit"))

	in, err := ReadInput(r)
	require.NoError(t, err)
	assert.Equal(t, "cp", in.Command)
	assert.Equal(t, []string{"a", "b"}, in.Args)

	in, err = ReadInput(r)
	require.NoError(t, err, "an empty line is not end of input")
	assert.True(t, in.IsEmpty())

	in, err = ReadInput(r)
	require.NoError(t, err, "a final line without terminator is still delivered")
	assert.Equal(t, "exit", in.Command)

	_, err = ReadInput(r)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine(t *testing.T) {
	long := strings.Repeat("y", 100*1024)
	r := bufio.NewReader(strings.NewReader("one\r\n\n" + long + "\nlast"))

	for _, want := range []string{"one", "", long, "last"} {
		got, err := ReadLine(r)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ReadLine(r)
	assert.ErrorIs(t, err, io.EOF)
}

func TestInput_Accessors(t *testing.T) {
	in := Parse("cp a b mode=fast")

	v, ok := in.Arg(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = in.Arg(2)
	assert.False(t, ok)
	_, ok = in.Arg(-1)
	assert.False(t, ok)

	v, ok = in.Kwarg("mode")
	assert.True(t, ok)
	assert.Equal(t, "fast", v)

	assert.Equal(t, 2, in.ArgCount())
	assert.Equal(t, 1, in.KwargCount())
}

func TestInput_StringAndEqual(t *testing.T) {
	in := Parse("cp z=1 a b y=2")

	assert.Equal(t, "cp a b y=2 z=1", in.String())
	assert.True(t, in.Equal(Parse(in.String())))
	assert.False(t, in.Equal(Parse("cp b a y=2 z=1")))
	assert.Equal(t, "", Parse("").String())
}
