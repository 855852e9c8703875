// Package config loads cmdshell settings from defaults, an optional YAML
// config file, .env files and CMDSHELL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cmdshell/internal/logger"
)

// EnvPrefix prefixes every environment variable read as a setting.
const EnvPrefix = "CMDSHELL"

// Config holds the settings of one cmdshell run.
type Config struct {
	Name           string `mapstructure:"name"`
	Prompt         string `mapstructure:"prompt"`
	AllowExecution bool   `mapstructure:"allow_execution"`
	Help           bool   `mapstructure:"help"`
	Exit           bool   `mapstructure:"exit"`
	CommandsFile   string `mapstructure:"commands_file"`
	HistoryFile    string `mapstructure:"history_file"`
	LogLevel       string `mapstructure:"log_level"`
	LogFile        string `mapstructure:"log_file"`
	Color          string `mapstructure:"color"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("name", "cmdshell")
	v.SetDefault("prompt", "(%name) ")
	v.SetDefault("allow_execution", false)
	v.SetDefault("help", true)
	v.SetDefault("exit", true)
	v.SetDefault("commands_file", "")
	v.SetDefault("history_file", "")
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
	v.SetDefault("color", "auto")
}

// Dir returns the cmdshell configuration directory, honoring XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cmdshell")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cmdshell")
}

// Load reads the configuration into a Config. An explicit configFile must
// exist; otherwise config.yaml in Dir is used when present. Environment
// variables override the file, and flags bound on v override both.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		logger.Debug("No config file found, using defaults")
	} else {
		logger.Debug("Loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv exports the variables of each existing .env file in paths.
// Variables already present in the environment are never overridden, and an
// earlier file wins over a later one. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read .env file %s: %w", path, err)
		}

		envMap, err := godotenv.Unmarshal(string(data))
		if err != nil {
			return fmt.Errorf("failed to parse .env file %s: %w", path, err)
		}
		for key, value := range envMap {
			if _, set := os.LookupEnv(key); set {
				continue
			}
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set %s: %w", key, err)
			}
		}
		logger.Debug("Loaded .env file", "path", path, "count", len(envMap))
	}
	return nil
}

// DotEnvPaths returns the .env files consulted at startup, highest priority
// first: the working directory, then the configuration directory.
func DotEnvPaths() []string {
	paths := []string{".env"}
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	return paths
}
