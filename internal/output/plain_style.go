package output

// PlainTextStyle implements TextStyle for plain text output without any styling.
// Only diagnostics carry a prefix so their meaning survives without color.
type PlainTextStyle struct {
	prefix string
}

// Render implements TextStyle.
func (s PlainTextStyle) Render(text ...string) string {
	out := s.prefix
	for _, t := range text {
		out += t
	}
	return out
}

// PlainStyleProvider is the fallback StyleProvider used when styling is off.
type PlainStyleProvider struct{}

var plainProvider = PlainStyleProvider{}

// GetStyle implements StyleProvider.
func (PlainStyleProvider) GetStyle(semantic string) TextStyle {
	switch SemanticType(semantic) {
	case SemanticWarning:
		return PlainTextStyle{prefix: "warning: "}
	case SemanticError:
		return PlainTextStyle{prefix: "error: "}
	default:
		return PlainTextStyle{}
	}
}

// IsAvailable implements StyleProvider. Plain text is always available.
func (PlainStyleProvider) IsAvailable() bool { return true }
