// Package logger provides centralized logging functionality for cmdshell.
// It configures structured logging with support for different output destinations and log levels.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout cmdshell.
var Logger *log.Logger

// output is where Logger and every component logger write.
var output io.Writer = os.Stderr

func init() {
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets up the logger based on CLI flags and environment variables.
// CLI flags take precedence over CMDSHELL_LOG_LEVEL.
func Configure(logLevel string, logFile string, testMode bool) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("CMDSHELL_LOG_LEVEL"))
	}
	if level == "" {
		level = "warn"
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		out = file
	}

	SetOutput(out)
	Logger.SetLevel(parseLogLevel(level))

	if testMode {
		// Deterministic output: no timestamps, fixed level.
		Logger.SetTimeFormat("")
		Logger.SetLevel(log.WarnLevel)
	}

	return nil
}

// SetOutput redirects the global logger. Tests use it to capture log lines.
func SetOutput(w io.Writer) {
	level := Logger.GetLevel()
	output = w
	Logger = log.New(w)
	Logger.SetTimeFormat("")
	Logger.SetLevel(level)
}

// SetLevel changes the global log level from a name such as "debug".
func SetLevel(level string) {
	Logger.SetLevel(parseLogLevel(level))
}

// parseLogLevel converts string to log level
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// CommandExecution logs command execution details for debugging.
func CommandExecution(command string, args map[string]string) {
	Debug("Executing command", "command", command, "args", args)
}

// NewStyledLogger creates a new logger with custom styles and prefix for component-specific logging.
// The prefix names the component (e.g., "Dispatcher", "Manifest").
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("33")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("214")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("88")).
		Foreground(lipgloss.Color("15"))

	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styles.Keys["argument"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["session"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}
