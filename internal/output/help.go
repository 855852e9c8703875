package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"cmdshell/pkg/cmdtypes"
)

// helpGap is the space between the usage column and the description.
const helpGap = 4

// FormatCommandList renders one line per command: the usage left-aligned in a
// column wide enough for the longest usage, then the short description.
func (p *Printer) FormatCommandList(infos []cmdtypes.HelpInfo) string {
	width := 0
	for _, info := range infos {
		width = max(width, ansi.StringWidth(info.Usage))
	}

	var b strings.Builder
	for _, info := range infos {
		usage := p.Render(SemanticCommand, info.Usage)
		pad := width + helpGap - ansi.StringWidth(usage)
		b.WriteString(usage)
		b.WriteString(strings.Repeat(" ", max(pad, 1)))
		b.WriteString(info.Description)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCommandHelp renders the detailed help of one command. The long
// description replaces the short one when present.
func (p *Printer) FormatCommandHelp(info cmdtypes.HelpInfo) string {
	var b strings.Builder

	b.WriteString(p.Render(SemanticHeading, "Usage:"))
	b.WriteString("\n\t")
	b.WriteString(p.Render(SemanticCommand, info.Usage))
	b.WriteString("\n")

	if len(info.Options) > 0 {
		b.WriteString(p.Render(SemanticHeading, "Arguments:"))
		b.WriteString("\n")
		for _, opt := range info.Options {
			b.WriteString("\t")
			b.WriteString(p.formatOption(opt))
			b.WriteString("\n")
		}
	}

	b.WriteString(p.Render(SemanticHeading, "Description:"))
	b.WriteString("\n")
	lines := info.LongDescription
	if len(lines) == 0 {
		lines = []string{info.Description}
	}
	if p.Styled() {
		if rendered, err := renderMarkdown(strings.Join(lines, "\n")); err == nil {
			b.WriteString(rendered)
			return b.String()
		}
	}
	for _, line := range lines {
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatNotFound renders the help response for an unknown command name.
func (p *Printer) FormatNotFound(name string) string {
	return fmt.Sprintf("Command '%s' not found.\n", name)
}

func (p *Printer) formatOption(opt cmdtypes.HelpOption) string {
	if opt.Required {
		return p.Render(SemanticArgument, "<"+opt.Name+">") + "  required"
	}
	note := "optional"
	if opt.Default != "" {
		note = fmt.Sprintf("optional, default %q", opt.Default)
	}
	return p.Render(SemanticArgument, "["+opt.Name+"]") + "  " + p.Render(SemanticMuted, note)
}

func renderMarkdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
