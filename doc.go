// Package askit provides typed, validated command-line input with automatic
// re-prompting.
//
// AskIt reads one line per attempt, parses it into one or more typed
// targets, applies optional validation predicates, and repeats the prompt
// until the input is accepted or the input stream ends. It is deliberately
// small: no forms, no cross-field validation, no async input.
//
// Key Features:
//
//   - Type-safe asking using generics: Ask[int], Ask[float64], Ask[[]int]
//   - Fixed arrays consume an exact token count; slices parse greedily
//   - encoding.TextUnmarshaler support (uuid.UUID, time.Time, net.IP, ...)
//   - Validation predicates with reusable rules in pkg/validate
//   - Injectable streams for testing, lipgloss styling, slog diagnostics
//   - Masked secret input on terminals via golang.org/x/term
//
// Basic Usage:
//
//	p := askit.New()
//
//	age, err := askit.AskFunc(p, "Age: ", validate.Between(0, 130))
//	if errors.Is(err, askit.ErrEndOfInput) {
//		// stdin closed before a valid answer
//	}
//
// Multiple values from one line:
//
//	name, score, err := askit.Ask2[string, int](p, "Name and score: ")
//
// Generic multi-field asking with per-field validation:
//
//	var host string
//	var ports []int
//	err := askit.AskFields(p, "Host and ports: ", []askit.Field{
//		askit.VarFunc(&host, validate.NonEmpty()),
//		askit.VarFunc(&ports, validate.Each(validate.Between(1, 65535))),
//	})
//
// Error Handling:
//
// Parse failures, excess tokens, and rejected values print a configurable
// message and re-prompt; they never surface as errors. Only three
// conditions reach the caller: ErrEndOfInput when the stream is exhausted,
// ErrStreamFailure when a read fails for any other reason, and
// ErrUnsupportedType when a target is not a pointer to a supported type.
// All are tested with errors.Is.
package askit
