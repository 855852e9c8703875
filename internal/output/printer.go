package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes plain or styled text to a single writer. It is safe for
// concurrent use.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.writer }

// Print outputs text without any semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without any semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Warning outputs warning text.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Styled reports whether the printer renders through its style provider.
func (p *Printer) Styled() bool {
	if p.forcePlain || p.mode == ModePlain {
		return false
	}
	return p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// Render returns text rendered for semantic without writing it.
func (p *Printer) Render(semantic SemanticType, text string) string {
	if p.Styled() {
		return p.styleProvider.GetStyle(string(semantic)).Render(text)
	}
	return plainProvider.GetStyle(string(semantic)).Render(text)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := p.Render(semantic, text)
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	_, _ = fmt.Fprint(p.writer, result)
}
