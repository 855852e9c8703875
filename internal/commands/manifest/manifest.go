// Package manifest loads declarative commands from a YAML file. Each entry
// becomes a command whose handler runs an external program with the bound
// arguments substituted into an argv template.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"cmdshell/internal/commands"
	"cmdshell/internal/execution"
	"cmdshell/internal/logger"
	"cmdshell/pkg/cmdtypes"
)

// File is the top-level document of a commands file.
type File struct {
	Commands []Definition `yaml:"commands"`
}

// Definition declares one command.
//
//	commands:
//	  - name: greet
//	    description: Greets someone
//	    usage: greet <who> [greeting]
//	    defaults:
//	      greeting: hello
//	    run: ["/bin/echo", "{greeting}", "{who}"]
type Definition struct {
	Name            string            `yaml:"name"`
	Description     string            `yaml:"description"`
	LongDescription string            `yaml:"long_description"`
	Usage           string            `yaml:"usage"`
	Defaults        map[string]string `yaml:"defaults"`
	// Run is the argv template. The first element is the file to execute.
	Run []string `yaml:"run"`
}

var placeholder = regexp.MustCompile(`\{([^{}]+)\}`)

// Command runs its argv template through an execution.Runner.
type Command struct {
	commands.BaseCommand
	run    []string
	runner execution.Runner
}

// Load reads the commands file at path. A missing file yields no commands.
func Load(path string, runner execution.Runner) ([]*Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("No commands file found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read commands file %s: %w", path, err)
	}
	cmds, err := Parse(data, runner)
	if err != nil {
		return nil, fmt.Errorf("error loading commands from %s: %w", path, err)
	}
	logger.Debug("Loaded commands file", "path", path, "count", len(cmds))
	return cmds, nil
}

// Parse decodes a commands document and builds its commands.
func Parse(data []byte, runner execution.Runner) ([]*Command, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	cmds := make([]*Command, 0, len(file.Commands))
	for i, def := range file.Commands {
		cmd, err := New(def, runner)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// New builds a command from def. Every placeholder in the run template must
// name a declared argument, and defaults may only be set on optional ones.
func New(def Definition, runner execution.Runner) (*Command, error) {
	if def.Name == "" {
		return nil, errors.New("name is required")
	}
	if len(def.Run) == 0 || def.Run[0] == "" {
		return nil, fmt.Errorf("%s: run must name a file to execute", def.Name)
	}
	usage := def.Usage
	if usage == "" {
		usage = def.Name
	}

	cmd := &Command{
		BaseCommand: commands.NewBaseCommand(def.Name, def.Description, strings.TrimRight(def.LongDescription, "\n"), usage),
		run:         append([]string(nil), def.Run...),
		runner:      runner,
	}
	if errs := cmd.UsageErrors(); len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", def.Name, errs[0])
	}

	for name, value := range def.Defaults {
		if err := cmd.SetDefaultValue(name, value); err != nil {
			return nil, fmt.Errorf("%s: %w", def.Name, err)
		}
	}

	for _, part := range def.Run {
		for _, m := range placeholder.FindAllStringSubmatch(part, -1) {
			if cmd.IsArgument(m[1]) == cmdtypes.ArgUnknown {
				return nil, fmt.Errorf("%s: run references unknown argument %q", def.Name, m[1])
			}
		}
	}
	return cmd, nil
}

// Execute implements cmdtypes.Command.
func (c *Command) Execute(args cmdtypes.Kwargs) error {
	logger.CommandExecution(c.Name(), args)
	argv := Expand(c.run, args)
	if len(argv) == 0 {
		return fmt.Errorf("%s: run template expanded to nothing", c.Name())
	}
	return c.runner.RunFile(context.Background(), argv[0], argv[1:])
}

// Expand substitutes args into template. An element that is exactly one
// placeholder expands to the whitespace-separated fields of its value, so
// "{args...}" passes every captured token as its own argument and an empty
// optional disappears. Placeholders embedded in a larger element are replaced
// textually.
func Expand(template []string, args cmdtypes.Kwargs) []string {
	argv := make([]string, 0, len(template))
	for _, part := range template {
		if m := placeholder.FindStringSubmatch(part); m != nil && m[0] == part {
			argv = append(argv, strings.Fields(args[m[1]])...)
			continue
		}
		argv = append(argv, placeholder.ReplaceAllStringFunc(part, func(s string) string {
			return args[s[1:len(s)-1]]
		}))
	}
	return argv
}

// Register adds cmds to registry, stopping at the first failure.
func Register(registry *commands.Registry, cmds []*Command) error {
	for _, cmd := range cmds {
		if err := registry.Add(cmd); err != nil {
			return err
		}
	}
	return nil
}
