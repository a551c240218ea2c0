package askit

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// tokenScanner walks the whitespace-delimited tokens of a single line.
type tokenScanner struct {
	tokens []string
	pos    int
}

func newTokenScanner(line string) *tokenScanner {
	return &tokenScanner{tokens: strings.Fields(line)}
}

func (s *tokenScanner) peek() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	return s.tokens[s.pos], true
}

func (s *tokenScanner) next() (string, bool) {
	tok, ok := s.peek()
	if ok {
		s.pos++
	}
	return tok, ok
}

func (s *tokenScanner) empty() bool {
	return s.pos >= len(s.tokens)
}

func (s *tokenScanner) remaining() []string {
	return s.tokens[s.pos:]
}

// fillLine tokenizes a line and fills the targets in order.
// targets must be non-nil pointers to supported types.
//
// An empty line with a single string target is valid input meaning the
// empty string. Otherwise every scalar target consumes one token, arrays
// consume exactly as many tokens as they have elements, and slices consume
// tokens greedily until one fails to parse as the element type. Tokens left
// over after all targets are filled are an excess input error.
func fillLine(line string, targets []any) error {
	if len(targets) == 1 {
		rv := reflect.ValueOf(targets[0])
		if rv.Kind() == reflect.Ptr && !rv.IsNil() &&
			rv.Elem().Kind() == reflect.String && line == "" {
			rv.Elem().SetString("")
			return nil
		}
	}

	sc := newTokenScanner(line)

	for _, target := range targets {
		rv := reflect.ValueOf(target)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrUnsupportedType, target)
		}

		if err := fillValue(rv.Elem(), sc); err != nil {
			return err
		}
	}

	if !sc.empty() {
		return fmt.Errorf("%w: unconsumed tokens %q", ErrExcessInput, sc.remaining())
	}

	return nil
}

// fillValue fills a single target from the scanner based on its type.
// The TextUnmarshaler check must come before the kind switch: uuid.UUID is
// an array and time.Time is a struct, yet both are single-token scalars.
func fillValue(v reflect.Value, sc *tokenScanner) error {
	if isTextUnmarshaler(v) {
		tok, ok := sc.next()
		if !ok {
			return fmt.Errorf("%w: missing value for %s", ErrParse, v.Type())
		}
		return fillScalar(v, tok)
	}

	switch v.Kind() {
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			tok, ok := sc.next()
			if !ok {
				return fmt.Errorf("%w: missing value %d of %d for %s", ErrParse, i+1, v.Len(), v.Type())
			}
			if err := fillScalar(v.Index(i), tok); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice:
		return fillSequence(v, sc)

	default:
		tok, ok := sc.next()
		if !ok {
			return fmt.Errorf("%w: missing value for %s", ErrParse, v.Type())
		}
		return fillScalar(v, tok)
	}
}

// fillSequence consumes tokens greedily: each token that parses as the
// element type is appended, and the first token that does not ends the
// sequence without being consumed. That token is not an error here; it is
// left for subsequent targets (or the excess input check) to account for.
func fillSequence(v reflect.Value, sc *tokenScanner) error {
	elemType := v.Type().Elem()
	seq := reflect.MakeSlice(v.Type(), 0, 0)

	for {
		tok, ok := sc.peek()
		if !ok {
			break
		}

		elem := reflect.New(elemType).Elem()
		if err := fillScalar(elem, tok); err != nil {
			if errors.Is(err, ErrUnsupportedType) {
				return err
			}
			break
		}

		sc.next()
		seq = reflect.Append(seq, elem)
	}

	v.Set(seq)
	return nil
}

func isTextUnmarshaler(v reflect.Value) bool {
	if !v.CanAddr() {
		return false
	}
	_, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
	return ok
}

// fillScalar parses one token into an addressable scalar value.
// Types implementing encoding.TextUnmarshaler (uuid.UUID, time.Time, net.IP,
// and friends) take precedence over the kind switch.
func fillScalar(v reflect.Value, tok string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := tu.UnmarshalText([]byte(tok)); err != nil {
				return fmt.Errorf("%w: invalid %s value %q", ErrParse, v.Type(), tok)
			}
			return nil
		}
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(tok)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid int value %q", ErrParse, tok)
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(tok, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid uint value %q", ErrParse, tok)
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(tok, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: invalid float value %q", ErrParse, tok)
		}
		v.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(tok)
		if err != nil {
			// Be lenient with boolean values
			switch strings.ToLower(tok) {
			case "on", "yes", "y":
				b = true
			case "off", "no", "n":
				b = false
			default:
				return fmt.Errorf("%w: invalid bool value %q", ErrParse, tok)
			}
		}
		v.SetBool(b)

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}

	return nil
}
