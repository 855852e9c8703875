package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdshell/internal/config"
	"cmdshell/internal/testutils"
)

func testConfig() config.Config {
	return config.Config{
		Name:   "test",
		Prompt: "(%name) ",
		Help:   true,
		Exit:   true,
		Color:  "never",
	}
}

func newTestApp(t *testing.T, cfg config.Config, stdin string, interactive bool) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a, err := newApp(cfg, appOptions{
		interactive: interactive,
		testMode:    true,
		stdin:       strings.NewReader(stdin),
		stdout:      &stdout,
		stderr:      &stderr,
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, &stdout, &stderr
}

func TestNewApp_Builtins(t *testing.T) {
	a, _, _ := newTestApp(t, testConfig(), "", false)

	assert.Equal(t, []string{"echo", "exit", "help"}, a.dispatcher.Registry().Names())
	assert.False(t, a.dispatcher.ExecutionEnabled())
	assert.Equal(t, "(test) ", a.dispatcher.Prompt())
}

func TestNewApp_DisabledBuiltins(t *testing.T) {
	cfg := testConfig()
	cfg.Help = false
	cfg.Exit = false
	cfg.AllowExecution = true

	a, _, _ := newTestApp(t, cfg, "", false)
	assert.Equal(t, []string{"echo"}, a.dispatcher.Registry().Names())
	assert.True(t, a.dispatcher.ExecutionEnabled())
}

func TestNewApp_CommandsFile(t *testing.T) {
	cfg := testConfig()
	cfg.CommandsFile = testutils.WriteFile(t, "commands.yaml", `
commands:
  - name: greet
    description: Greets someone
    usage: greet <who>
    run: ["/bin/echo", "hi", "{who}"]
`)

	a, _, _ := newTestApp(t, cfg, "", false)
	assert.True(t, a.dispatcher.Registry().IsValidCommand("greet"))
}

func TestNewApp_CommandsFileClash(t *testing.T) {
	cfg := testConfig()
	cfg.CommandsFile = testutils.WriteFile(t, "commands.yaml", `
commands:
  - name: echo
    run: ["/bin/echo"]
`)

	_, err := newApp(cfg, appOptions{testMode: true, stdin: strings.NewReader(""), stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}})
	assert.ErrorContains(t, err, "already registered")
}

func TestApp_InteractiveSession(t *testing.T) {
	a, stdout, stderr := newTestApp(t, testConfig(), "echo hello  world\nhlep\nexit 2\necho never\n", true)

	assert.Equal(t, 2, a.dispatcher.Mainloop())
	assert.Equal(t, "(test) hello world\n(test) (test) ", stdout.String())
	assert.Equal(t, "error: command 'hlep' not found; did you mean `help`?\n", stderr.String())
}

func TestApp_RunScripts(t *testing.T) {
	a, stdout, stderr := newTestApp(t, testConfig(), "", false)

	first := testutils.WriteFile(t, "first.cmds", "# greeting\necho one\n")
	second := testutils.WriteFile(t, "second.cmds", "echo two\nexit 5\necho never\n")
	third := testutils.WriteFile(t, "third.cmds", "echo three\n")

	assert.Equal(t, 5, a.runScripts([]string{first, second, third}))
	assert.Equal(t, "one\ntwo\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestApp_RunScriptsFailure(t *testing.T) {
	a, stdout, stderr := newTestApp(t, testConfig(), "", false)

	path := testutils.WriteFile(t, "bad.cmds", "echo ok\nexit 1 2\necho never\n")

	assert.Equal(t, 1, a.runScripts([]string{path}))
	assert.Equal(t, "ok\n", stdout.String())
	assert.Contains(t, stderr.String(), "bad.cmds:2: command 'exit' has too many arguments")
}
