package askit

import "errors"

// Common asking errors
var (
	// ErrEndOfInput is returned when the input stream ends before a line
	// could be read. It is terminal: the ask loop never retries it.
	ErrEndOfInput = errors.New("end of input")

	// ErrStreamFailure is returned when reading the input stream fails for
	// a reason other than end of input. It is reported once on the error
	// stream and then propagated; a broken stream is not worth retrying.
	ErrStreamFailure = errors.New("cannot read from input stream")

	// ErrParse indicates a token could not be parsed into its target type,
	// or that the line ran out of tokens before all targets were filled.
	ErrParse = errors.New("failed to parse input")

	// ErrExcessInput indicates the line contained tokens beyond those
	// consumed by the requested targets.
	ErrExcessInput = errors.New("excess input")

	// ErrCondition indicates a parsed value was rejected by its validation
	// predicate.
	ErrCondition = errors.New("value rejected by condition")

	// ErrUnsupportedType indicates an ask target is not a pointer to a
	// supported type. This is a programmer error and is never retried.
	ErrUnsupportedType = errors.New("unsupported target type")
)
