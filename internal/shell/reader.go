package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"cmdshell/internal/parser"
)

// LineReader supplies the main loop with input lines. ReadLine returns io.EOF
// once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// StreamReader reads lines from any io.Reader, such as a pipe or a file.
type StreamReader struct {
	in        *bufio.Reader
	promptOut io.Writer
	closer    io.Closer
}

// NewStreamReader reads lines from r. When promptOut is non-nil each prompt
// is written to it before reading.
func NewStreamReader(r io.Reader, promptOut io.Writer) *StreamReader {
	s := &StreamReader{in: bufio.NewReader(r), promptOut: promptOut}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// ReadLine implements LineReader. The line terminator, "\n" or "\r\n", is
// stripped. A final line without a terminator is still returned.
func (s *StreamReader) ReadLine(prompt string) (string, error) {
	if s.promptOut != nil && prompt != "" {
		if _, err := io.WriteString(s.promptOut, prompt); err != nil {
			return "", err
		}
	}

	return parser.ReadLine(s.in)
}

// Close implements LineReader.
func (s *StreamReader) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// ReadlineReader reads lines from a terminal with editing, history and
// completion.
type ReadlineReader struct {
	rl *readline.Instance
}

// ReadlineConfig configures a ReadlineReader.
type ReadlineConfig struct {
	// HistoryFile persists history between sessions when set.
	HistoryFile string
	// Completer offers tab completion when set.
	Completer readline.AutoCompleter
}

// NewReadlineReader creates a terminal line reader.
func NewReadlineReader(cfg ReadlineConfig) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       cfg.HistoryFile,
		AutoComplete:      cfg.Completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine implements LineReader. Ctrl+C on an empty line ends input like
// Ctrl+D; on a partly typed line it discards the line.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if len(line) == 0 {
			return "", io.EOF
		}
		return "", nil
	}
	return line, err
}

// Close implements LineReader.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
