package askit

import "errors"

// Default prompt and retry messages, matching the classic console idiom.
const (
	DefaultPrompt         = "Enter input: "
	DefaultParseError     = "Error: parse error"
	DefaultConditionError = "Error: unmet condition"
	DefaultExcessError    = "Error: excess input"
)

type askConfig struct {
	parseError     string
	conditionError string
	excessError    string
}

// AskOption configures the retry messages of a single ask.
type AskOption func(*askConfig)

// WithParseError overrides the message shown when a line fails to parse.
func WithParseError(msg string) AskOption {
	return func(c *askConfig) { c.parseError = msg }
}

// WithConditionError overrides the message shown when a parsed value is
// rejected by its validation predicate.
func WithConditionError(msg string) AskOption {
	return func(c *askConfig) { c.conditionError = msg }
}

// WithExcessError overrides the message shown when a line contains tokens
// beyond those the targets consume.
func WithExcessError(msg string) AskOption {
	return func(c *askConfig) { c.excessError = msg }
}

func newAskConfig(opts []AskOption) askConfig {
	cfg := askConfig{
		parseError:     DefaultParseError,
		conditionError: DefaultConditionError,
		excessError:    DefaultExcessError,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Ask prompts for a single value of type T and re-prompts until a line
// parses. Supported types are strings, integers, unsigned integers, floats,
// bools, types implementing encoding.TextUnmarshaler, and arrays or slices
// of those. It returns ErrEndOfInput when the input stream is exhausted.
//
//	age, err := askit.Ask[int](p, "Age: ")
func Ask[T any](p *Prompter, prompt string, opts ...AskOption) (T, error) {
	return AskFunc[T](p, prompt, nil, opts...)
}

// AskFunc is Ask with a validation predicate: parsed values for which valid
// returns false are rejected with the condition-error message and the
// prompt is repeated. A nil predicate accepts everything.
//
//	age, err := askit.AskFunc(p, "Age: ", validate.Between(0, 130))
func AskFunc[T any](p *Prompter, prompt string, valid func(T) bool, opts ...AskOption) (T, error) {
	var v T

	field := Field{target: &v}
	if valid != nil {
		field.valid = func() bool { return valid(v) }
	}

	err := p.ask(prompt, []Field{field}, newAskConfig(opts))
	return v, err
}

// Ask2 prompts for two values parsed in order from one line.
func Ask2[T1, T2 any](p *Prompter, prompt string, opts ...AskOption) (T1, T2, error) {
	var v1 T1
	var v2 T2

	err := p.ask(prompt, []Field{Var(&v1), Var(&v2)}, newAskConfig(opts))
	return v1, v2, err
}

// Ask3 prompts for three values parsed in order from one line.
func Ask3[T1, T2, T3 any](p *Prompter, prompt string, opts ...AskOption) (T1, T2, T3, error) {
	var v1 T1
	var v2 T2
	var v3 T3

	err := p.ask(prompt, []Field{Var(&v1), Var(&v2), Var(&v3)}, newAskConfig(opts))
	return v1, v2, v3, err
}

// AskFields prompts for an ordered list of typed fields parsed from one
// line, re-asking the whole line when any field fails to parse or fails its
// predicate.
//
// Fields fill strictly in declaration order. A slice field consumes tokens
// greedily, so a slice placed before a field with a compatible element type
// will swallow that field's tokens; put slices after the fields they could
// shadow, or give the following field a distinguishable type.
//
//	var name string
//	var scores []int
//	err := askit.AskFields(p, "Name and scores: ", []askit.Field{
//		askit.Var(&name),
//		askit.VarFunc(&scores, validate.Each(validate.Min(0))),
//	})
func AskFields(p *Prompter, prompt string, fields []Field, opts ...AskOption) error {
	return p.ask(prompt, fields, newAskConfig(opts))
}

// ask runs the prompt/read/parse/validate loop until the line is accepted
// or the input stream fails. Parse, excess input, and condition failures
// print their message and retry; end of input, stream failure, and
// unsupported target types propagate.
func (p *Prompter) ask(prompt string, fields []Field, cfg askConfig) error {
	targets := fieldTargets(fields)

	for attempt := 1; ; attempt++ {
		p.showPrompt(prompt)

		line, err := p.readLine()
		if err != nil {
			return err
		}

		if err := fillLine(line, targets); err != nil {
			switch {
			case errors.Is(err, ErrExcessInput):
				p.showRetry(cfg.excessError)
			case errors.Is(err, ErrParse):
				p.showRetry(cfg.parseError)
			default:
				return err
			}
			p.log.Debug("input rejected, re-asking", "attempt", attempt, "error", err)
			continue
		}

		if !fieldsValid(fields) {
			p.showRetry(cfg.conditionError)
			p.log.Debug("input rejected, re-asking", "attempt", attempt, "error", ErrCondition)
			continue
		}

		return nil
	}
}
