// Package main provides the cmdshell CLI entry point: an interactive command
// shell that can also run command files in batch mode.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cmdshell/internal/config"
	"cmdshell/internal/logger"
	"cmdshell/internal/version"
)

var (
	configFile string
	testMode   bool
	detailed   bool
	cfg        config.Config
	exitCode   int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cmdshell",
	Short: "cmdshell - a line-oriented command interpreter",
	Long: `cmdshell reads command lines, matches them against its registered commands,
binds their arguments and runs them. Commands can be declared in a YAML file and
unknown commands can optionally run as external programs.`,
	Run: runShell,
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Run:   runShell,
}

// batchCmd runs command files without entering interactive mode
var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Execute command files in batch mode",
	Long: `Execute each command file in order. Blank lines and lines starting with '#'
are skipped. Execution stops at the first failing line.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		if detailed {
			fmt.Fprintln(cmd.OutOrStdout(), version.Detailed())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.Short())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file [default: $XDG_CONFIG_HOME/cmdshell/config.yaml]")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("name", "", "Shell name substituted for %name in the prompt")
	flags.String("prompt", "", "Prompt template")
	flags.String("commands", "", "YAML file of declarative commands")
	flags.String("history", "", "File keeping interactive history")
	flags.String("color", "", "Color output (auto|always|never)")
	flags.Bool("allow-execution", false, "Run unknown commands as external files")

	bindings := map[string]string{
		"log_level":       "log-level",
		"log_file":        "log-file",
		"name":            "name",
		"prompt":          "prompt",
		"commands_file":   "commands",
		"history_file":    "history",
		"color":           "color",
		"allow_execution": "allow-execution",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show detailed build information")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.LoadDotEnv(config.DotEnvPaths()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	var err error
	cfg, err = config.Load(viper.GetViper(), configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting cmdshell", "version", version.Version, "name", cfg.Name)

	app, err := newApp(cfg, appOptions{interactive: true, testMode: testMode})
	if err != nil {
		logger.Fatal("Failed to start shell", "error", err)
	}
	defer app.Close()

	exitCode = app.dispatcher.Mainloop()
	logger.Info("Shell stopped", "exit_code", exitCode)
}

func runBatch(_ *cobra.Command, args []string) {
	app, err := newApp(cfg, appOptions{testMode: testMode})
	if err != nil {
		logger.Fatal("Failed to start shell", "error", err)
	}
	defer app.Close()

	exitCode = app.runScripts(args)
}
