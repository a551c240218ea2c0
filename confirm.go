package askit

import "strings"

// Confirm asks a yes/no question and returns the answer. It accepts "y",
// "yes", "n", and "no" in any casing, takes def on an empty line, and
// re-asks on anything else. It returns ErrEndOfInput when the input stream
// is exhausted.
func Confirm(p *Prompter, prompt string, def bool, opts ...AskOption) (bool, error) {
	cfg := newAskConfig(opts)
	if cfg.parseError == DefaultParseError {
		cfg.parseError = "Error: please answer yes or no"
	}

	for {
		p.showPrompt(prompt)

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		p.showRetry(cfg.parseError)
	}
}
