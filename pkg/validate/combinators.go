package validate

// All accepts values satisfying every given rule.
func All[T any](rules ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, rule := range rules {
			if !rule(v) {
				return false
			}
		}
		return true
	}
}

// Any accepts values satisfying at least one of the given rules.
func Any[T any](rules ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, rule := range rules {
			if rule(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts a rule.
func Not[T any](rule func(T) bool) func(T) bool {
	return func(v T) bool {
		return !rule(v)
	}
}

// Each lifts a scalar rule over a sequence: the sequence is accepted when
// every element satisfies the rule. An empty sequence is accepted.
func Each[T any](rule func(T) bool) func([]T) bool {
	return func(vs []T) bool {
		for _, v := range vs {
			if !rule(v) {
				return false
			}
		}
		return true
	}
}
