// Package output provides the console output layer for cmdshell.
// Printers write plain or styled text; styling is injected through a
// StyleProvider so the rest of the code never depends on a terminal library.
package output

// StyleProvider supplies a TextStyle for each semantic type.
type StyleProvider interface {
	// GetStyle returns the style for a semantic type such as "error" or "command".
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider can style output. Printers fall
	// back to plain text otherwise.
	IsAvailable() bool
}

// TextStyle renders text with styling. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text ...string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto styles output only when the style provider is available.
	ModeAuto Mode = iota

	// ModeStyled forces styled output.
	ModeStyled

	// ModePlain forces plain text output.
	ModePlain
)

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticCommand represents a command usage string.
	SemanticCommand SemanticType = "command"
	// SemanticArgument represents an argument name.
	SemanticArgument SemanticType = "argument"
	// SemanticHeading represents a section heading.
	SemanticHeading SemanticType = "heading"
	// SemanticMuted represents secondary text.
	SemanticMuted SemanticType = "muted"
)
