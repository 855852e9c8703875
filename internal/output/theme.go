package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ThemeStyleProvider styles output with lipgloss.
type ThemeStyleProvider struct {
	styles map[SemanticType]lipgloss.Style
}

// NewThemeStyleProvider creates the default color theme.
func NewThemeStyleProvider() *ThemeStyleProvider {
	return &ThemeStyleProvider{
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:    lipgloss.NewStyle(),
			SemanticInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			SemanticWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			SemanticError:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			SemanticCommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			SemanticArgument: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			SemanticHeading:  lipgloss.NewStyle().Bold(true).Underline(true),
			SemanticMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

// GetStyle implements StyleProvider.
func (t *ThemeStyleProvider) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[SemanticType(semantic)]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable implements StyleProvider. Styling is off when the terminal
// reports no color support.
func (t *ThemeStyleProvider) IsAvailable() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// ParseColorMode maps the "color" setting to a Mode. Unknown values mean auto.
func ParseColorMode(value string) Mode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "always", "true", "on":
		return ModeStyled
	case "never", "false", "off":
		return ModePlain
	default:
		return ModeAuto
	}
}

// PrinterOptions returns the options for a printer honoring a color mode.
// Auto mode only styles when the environment asks for color.
func PrinterOptions(mode Mode) []Option {
	switch mode {
	case ModePlain:
		return []Option{PlainText()}
	case ModeStyled:
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		return []Option{WithMode(ModeStyled), WithStyles(NewThemeStyleProvider())}
	default:
		if termenv.EnvColorProfile() == termenv.Ascii {
			return []Option{PlainText()}
		}
		return []Option{WithStyles(NewThemeStyleProvider())}
	}
}
