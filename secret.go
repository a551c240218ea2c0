package askit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// AskSecret prompts for a single line without echoing it back when the
// input stream is a terminal. On non-terminal input (pipes, tests) it falls
// back to a plain line read. The value is returned verbatim: no parsing, no
// trimming, no retry.
func AskSecret(p *Prompter, prompt string) (string, error) {
	p.showPrompt(prompt)

	if f, ok := p.source.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		// ReadPassword suppresses the user's newline as well.
		fmt.Fprintln(p.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEndOfInput
			}
			fmt.Fprintf(p.errOut, "%s: %v\n", ErrStreamFailure, err)
			return "", fmt.Errorf("%w: %v", ErrStreamFailure, err)
		}
		return string(secret), nil
	}

	return p.readLine()
}
