package askit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Prompter owns the console streams used by the ask functions and renders
// prompts and retry messages to them. The zero configuration talks to
// os.Stdin, os.Stdout, and os.Stderr.
//
// A Prompter is not safe for concurrent use: it wraps a single buffered
// reader around its input stream.
type Prompter struct {
	source io.Reader
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	promptStyle lipgloss.Style
	errorStyle  lipgloss.Style

	log *slog.Logger
}

// Option configures a Prompter during construction.
type Option func(*Prompter)

// WithInput sets the input stream, ignoring nil readers for safety.
func WithInput(r io.Reader) Option {
	return func(p *Prompter) {
		if r != nil {
			p.source = r
		}
	}
}

// WithOutput sets the stream prompts and retry messages are written to,
// ignoring nil writers for safety.
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		if w != nil {
			p.out = w
		}
	}
}

// WithErrorOutput sets the stream unrecoverable read failures are reported
// to, ignoring nil writers for safety.
func WithErrorOutput(w io.Writer) Option {
	return func(p *Prompter) {
		if w != nil {
			p.errOut = w
		}
	}
}

// WithPromptStyle renders prompt text through the given lipgloss style.
func WithPromptStyle(s lipgloss.Style) Option {
	return func(p *Prompter) {
		p.promptStyle = s
	}
}

// WithErrorStyle renders retry messages through the given lipgloss style.
func WithErrorStyle(s lipgloss.Style) Option {
	return func(p *Prompter) {
		p.errorStyle = s
	}
}

// WithLogger installs a logger for Debug-level retry diagnostics.
// By default the Prompter logs nothing.
func WithLogger(log *slog.Logger) Option {
	return func(p *Prompter) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a Prompter bound to the standard console streams unless
// overridden by options.
func New(opts ...Option) *Prompter {
	p := &Prompter{
		source:      os.Stdin,
		out:         os.Stdout,
		errOut:      os.Stderr,
		promptStyle: lipgloss.NewStyle(),
		errorStyle:  lipgloss.NewStyle(),
		log:         slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)})),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.in = bufio.NewReader(p.source)

	return p
}

// showPrompt writes the prompt without a trailing newline so input is typed
// on the same line.
func (p *Prompter) showPrompt(prompt string) {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	fmt.Fprint(p.out, p.promptStyle.Render(prompt))
}

// showRetry writes a retry message on its own line.
func (p *Prompter) showRetry(msg string) {
	fmt.Fprintln(p.out, p.errorStyle.Render(msg))
}

// readLine reads exactly one line from the input stream.
//
// End of input before any byte of the line yields ErrEndOfInput. A final
// line without a trailing newline is still a complete line; end of input is
// reported on the read after it. Any other read error is reported once on
// the error stream and returned as ErrStreamFailure.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			fmt.Fprintf(p.errOut, "%s: %v\n", ErrStreamFailure, err)
			return "", fmt.Errorf("%w: %v", ErrStreamFailure, err)
		}
		if line == "" {
			return "", ErrEndOfInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}
