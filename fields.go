package askit

// Field describes one typed slot of a multi-field ask: a pointer to the
// value to fill and an optional predicate checked after parsing.
type Field struct {
	target any
	valid  func() bool
}

// Var describes a field with no validation predicate.
// target must be a non-nil pointer to a supported type.
func Var(target any) Field {
	return Field{target: target}
}

// VarFunc describes a field whose parsed value must satisfy valid.
func VarFunc[T any](target *T, valid func(T) bool) Field {
	return Field{
		target: target,
		valid:  func() bool { return valid(*target) },
	}
}

func fieldTargets(fields []Field) []any {
	targets := make([]any, len(fields))
	for i, f := range fields {
		targets[i] = f.target
	}
	return targets
}

func fieldsValid(fields []Field) bool {
	for _, f := range fields {
		if f.valid != nil && !f.valid() {
			return false
		}
	}
	return true
}
