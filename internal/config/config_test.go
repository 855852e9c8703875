package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmdshell/internal/testutils"
)

// isolate points the config directory at an empty temp dir and clears every
// setting variable for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"NAME", "PROMPT", "ALLOW_EXECUTION", "HELP", "EXIT", "COMMANDS_FILE", "HISTORY_FILE", "LOG_LEVEL", "LOG_FILE", "COLOR"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+key))
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, Config{
		Name:   "cmdshell",
		Prompt: "(%name) ",
		Help:   true,
		Exit:   true,
		Color:  "auto",
	}, cfg)
}

func TestLoad_ConfigDirFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cmdshell"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cmdshell", "config.yaml"), []byte(
		"name: calc\nallow_execution: true\nhelp: false\ncommands_file: /etc/calc.yaml\n"), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "calc", cfg.Name)
	assert.True(t, cfg.AllowExecution)
	assert.False(t, cfg.Help)
	assert.True(t, cfg.Exit)
	assert.Equal(t, "/etc/calc.yaml", cfg.CommandsFile)
}

func TestLoad_ExplicitFileAndEnvOverride(t *testing.T) {
	isolate(t)
	path := testutils.WriteFile(t, "custom.yaml", "name: fromfile\nprompt: '> '\n")
	t.Setenv("CMDSHELL_NAME", "fromenv")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "fromenv", cfg.Name)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := testutils.WriteFile(t, "bad.yaml", "name: [\n")

	_, err := Load(viper.New(), path)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CMDSHELL_COLOR", "never")

	first := testutils.WriteFile(t, "first.env", "CMDSHELL_NAME=first\nCMDSHELL_COLOR=always\n")
	second := testutils.WriteFile(t, "second.env", "CMDSHELL_NAME=second\nCMDSHELL_PROMPT=two\n")

	require.NoError(t, LoadDotEnv(first, filepath.Join(t.TempDir(), "missing.env"), second))

	assert.Equal(t, "first", os.Getenv("CMDSHELL_NAME"), "earlier file wins")
	assert.Equal(t, "never", os.Getenv("CMDSHELL_COLOR"), "real environment wins")
	assert.Equal(t, "two", os.Getenv("CMDSHELL_PROMPT"))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Name)
}

func TestLoadDotEnv_Malformed(t *testing.T) {
	isolate(t)
	path := testutils.WriteFile(t, "bad.env", "NOT VALID LINE WITHOUT EQUALS 'x\n")

	assert.Error(t, LoadDotEnv(path))
}

func TestDirAndDotEnvPaths(t *testing.T) {
	dir := isolate(t)

	assert.Equal(t, filepath.Join(dir, "cmdshell"), Dir())
	assert.Equal(t, []string{".env", filepath.Join(dir, "cmdshell", ".env")}, DotEnvPaths())
}
